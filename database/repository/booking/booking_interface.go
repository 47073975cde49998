package bookingRepo

import (
	"context"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// FindByKey returns bookings matching the (treatment, date, patientName) triple exactly.
	FindByKey(ctx context.Context, key models.BookingKey) ([]models.Booking, error)
	// Insert stores a new booking and sets its ID.
	Insert(ctx context.Context, booking *models.Booking) error
	// InsertUnique stores the booking only if no booking with the same key exists.
	// It returns the existing booking when there is a conflict, or nil when the booking was inserted.
	InsertUnique(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	// FindByDate returns all bookings whose date label equals date.
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	// FindByPatient returns all bookings of a patient email.
	FindByPatient(ctx context.Context, email string) ([]models.Booking, error)
	// GetByID returns the booking or nil when it does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	// MarkPaid flags the booking as paid, records the transaction ID and returns
	// the updated booking, or nil when it does not exist.
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (*models.Booking, error)
}
