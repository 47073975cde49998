package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification kinds.
const (
	NotificationBookingConfirmed = "booking_confirmed"
	NotificationPaymentReceived  = "payment_received"
)

// Notification is a message stored for a patient by the background worker.
type Notification struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PatientEmail string             `bson:"patient" json:"patient"`
	Type         string             `bson:"type" json:"type"`
	Message      string             `bson:"message" json:"message"`
	BookingID    string             `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	Read         bool               `bson:"read" json:"read"`
}

// NotificationPayload is the queued task body.
type NotificationPayload struct {
	PatientEmail string `json:"patient"`
	Type         string `json:"type"`
	BookingID    string `json:"bookingId"`
	Treatment    string `json:"treatment,omitempty"`
	Date         string `json:"date,omitempty"`
	Slot         string `json:"slot,omitempty"`
	Transaction  string `json:"transactionId,omitempty"`
}
