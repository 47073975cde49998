package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Insert stores a new booking document.
func (r *MongoBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// InsertUnique upserts the booking keyed by (treatment, date, patientName) with
// $setOnInsert, so an existing booking is returned untouched instead of duplicated.
// Relies on the unique key index to settle concurrent inserts.
func (r *MongoBookingRepo) InsertUnique(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	filter := keyFilter(booking.Key())
	update := bson.M{"$setOnInsert": booking}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.Before)

	var existing models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&existing)
	switch {
	case err == nil:
		booking.ID = primitive.NilObjectID
		return &existing, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, nil
	case mongo.IsDuplicateKeyError(err):
		// Lost an insert race on the unique index; the winner is the conflict.
		booking.ID = primitive.NilObjectID
		if err := r.coll.FindOne(ctx, filter).Decode(&existing); err != nil {
			return nil, fmt.Errorf("failed to load conflicting booking: %w", err)
		}
		return &existing, nil
	default:
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
}

// MarkPaid sets paid=true and the transaction ID on a booking and returns the
// updated document, or nil when no booking has the ID.
func (r *MongoBookingRepo) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", id.Hex(), err)
	}
	return &updated, nil
}
