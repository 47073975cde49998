package booking

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"
	"doctorsportal/services/notification"

	"go.uber.org/zap"
)

// BookingService covers availability, admission and payment of bookings.
type BookingService interface {
	Available(ctx context.Context, date string) ([]models.Service, error)
	Book(ctx context.Context, candidate models.Booking) (*BookResult, error)
	ListForPatient(ctx context.Context, email string) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ConfirmPayment(ctx context.Context, id string, conf models.PaymentConfirmation) (*models.Booking, error)
}

// BookResult reports whether a booking was admitted. Booking is the stored
// booking when accepted and the conflicting one otherwise.
type BookResult struct {
	Accepted bool
	Booking  *models.Booking
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Services serviceRepo.ServiceRepository
	Payments paymentRepo.PaymentRepository
	Notifier notification.Notifier
	Logger   *zap.Logger

	// LegacyAdmission keeps the lookup-then-insert admission sequence. Two
	// concurrent identical requests may then both be admitted.
	LegacyAdmission bool
}
