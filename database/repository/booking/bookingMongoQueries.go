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
)

func keyFilter(key models.BookingKey) bson.M {
	return bson.M{
		"treatment":   key.Treatment,
		"date":        key.Date,
		"patientName": key.PatientName,
	}
}

// FindByKey returns the bookings stored under key.
func (r *MongoBookingRepo) FindByKey(ctx context.Context, key models.BookingKey) ([]models.Booking, error) {
	return r.find(ctx, keyFilter(key))
}

// FindByDate returns every booking for the date label.
func (r *MongoBookingRepo) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"date": date})
}

// FindByPatient returns every booking made with the patient email.
func (r *MongoBookingRepo) FindByPatient(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"patient": email})
}

// GetByID retrieves a booking by its ObjectID. A missing booking is not an error.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id.Hex(), err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
