package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed payment for a booking.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookingID     primitive.ObjectID `bson:"booking" json:"booking"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	PatientEmail  string             `bson:"patient,omitempty" json:"patient,omitempty"`
	Amount        float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// PaymentIntentRequest is the body of POST /create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// PaymentIntent is what the client needs to confirm a card payment.
type PaymentIntent struct {
	ID           string `json:"id,omitempty"`
	ClientSecret string `json:"clientSecret"`
}
