package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const collectionName = "bookings"

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll      *mongo.Collection
	uniqueKey bool
}

// NewMongoBookingRepo creates a booking repository on db. When uniqueKey is set the
// (treatment, date, patientName) index is unique and InsertUnique is atomic.
func NewMongoBookingRepo(db *mongo.Database, uniqueKey bool) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection(collectionName), uniqueKey: uniqueKey}

	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("bookingRepo: failed to create indexes", zap.Error(err))
	}
	return repo
}

// newContext bounds a repository call by timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}
