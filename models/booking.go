package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient's reservation of one slot of one treatment on one date.
// Treatment references a Service by name. Date is a free-form label and is
// compared verbatim.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment     string             `bson:"treatment" json:"treatment" binding:"required"`
	Date          string             `bson:"date" json:"date" binding:"required"`
	Slot          string             `bson:"slot" json:"slot" binding:"required"`
	PatientName   string             `bson:"patientName" json:"patientName" binding:"required"`
	PatientEmail  string             `bson:"patient" json:"patient" binding:"required,email"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Paid          bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// BookingKey identifies a booking for the uniqueness rule.
type BookingKey struct {
	Treatment   string
	Date        string
	PatientName string
}

// Key returns the (treatment, date, patientName) triple of the booking.
func (b Booking) Key() BookingKey {
	return BookingKey{Treatment: b.Treatment, Date: b.Date, PatientName: b.PatientName}
}

// PaymentConfirmation is the body of PATCH /booking/:id.
type PaymentConfirmation struct {
	TransactionID string  `json:"transactionId" binding:"required"`
	Amount        float64 `json:"amount,omitempty"`
}
