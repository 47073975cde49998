package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	keyIndexUnique = "booking_key_unique"
	keyIndexPlain  = "booking_key_idx"

	codeIndexNotFound = 27
)

// ensureIndexes creates the indexes used by admission, availability and patient listings.
// The key index of the other admission mode is dropped first, since both cover the
// same keys and Mongo refuses to create the second one while the first exists.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	keyIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "treatment", Value: 1}, {Key: "date", Value: 1}, {Key: "patientName", Value: 1}},
		Options: options.Index().SetName(keyIndexPlain),
	}
	stale := keyIndexUnique
	if r.uniqueKey {
		keyIndex.Options = options.Index().SetUnique(true).SetName(keyIndexUnique)
		stale = keyIndexPlain
	}
	if err := r.dropIndex(ctx, stale); err != nil {
		return err
	}

	indexModels := []mongo.IndexModel{
		keyIndex,
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "treatment", Value: 1}},
			Options: options.Index().SetName("date_treatment_idx"),
		},
		{
			Keys:    bson.D{{Key: "patient", Value: 1}},
			Options: options.Index().SetName("patient_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

// dropIndex removes the named index. A missing index is not an error.
func (r *MongoBookingRepo) dropIndex(ctx context.Context, name string) error {
	_, err := r.coll.Indexes().DropOne(ctx, name)
	if err == nil {
		zap.L().Info("bookingRepo: dropped key index of other admission mode", zap.String("index", name))
		return nil
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && (cmdErr.Code == codeIndexNotFound || cmdErr.Name == "IndexNotFound" || cmdErr.Name == "NamespaceNotFound") {
		return nil
	}
	return fmt.Errorf("failed to drop booking index %s: %w", name, err)
}
