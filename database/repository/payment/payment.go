package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository stores payment confirmations.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
}

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	return &MongoPaymentRepo{coll: db.Collection("payments")}
}

// Create inserts a payment record.
func (r *MongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to record payment for booking %s: %w", payment.BookingID.Hex(), err)
	}
	return nil
}
