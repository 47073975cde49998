package booking

import (
	"context"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Available loads the catalog and the date's bookings and computes free slots.
func (s *DefaultBookingService) Available(ctx context.Context, date string) ([]models.Service, error) {
	services, err := s.Services.GetAll(ctx)
	if err != nil {
		return nil, storeError("load services", err)
	}
	bookings, err := s.Bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, storeError("load bookings", err)
	}
	return AvailableSlots(date, services, bookings), nil
}

// Book runs the admission check and stores the booking when it is accepted.
func (s *DefaultBookingService) Book(ctx context.Context, candidate models.Booking) (*BookResult, error) {
	candidate.ID = primitive.NilObjectID
	candidate.Paid = false
	candidate.TransactionID = ""

	var admission Admission
	if s.LegacyAdmission {
		existing, err := s.Bookings.FindByKey(ctx, candidate.Key())
		if err != nil {
			return nil, storeError("look up booking", err)
		}
		admission = AdmitBooking(candidate, existing)
		if admission.Accepted {
			if err := s.Bookings.Insert(ctx, &candidate); err != nil {
				return nil, storeError("insert booking", err)
			}
		}
	} else {
		conflict, err := s.Bookings.InsertUnique(ctx, &candidate)
		if err != nil {
			return nil, storeError("insert booking", err)
		}
		admission = Admission{Accepted: true}
		if conflict != nil {
			admission = AdmitBooking(candidate, []models.Booking{*conflict})
		}
	}

	if !admission.Accepted {
		s.logger().Info("duplicate booking rejected",
			zap.String("treatment", candidate.Treatment),
			zap.String("date", candidate.Date))
		return &BookResult{Accepted: false, Booking: admission.Conflict}, nil
	}

	s.notify(ctx, models.NotificationPayload{
		PatientEmail: candidate.PatientEmail,
		Type:         models.NotificationBookingConfirmed,
		BookingID:    candidate.ID.Hex(),
		Treatment:    candidate.Treatment,
		Date:         candidate.Date,
		Slot:         candidate.Slot,
	})
	return &BookResult{Accepted: true, Booking: &candidate}, nil
}

// ListForPatient returns the bookings made with email.
func (s *DefaultBookingService) ListForPatient(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.Bookings.FindByPatient(ctx, email)
	if err != nil {
		return nil, storeError("list bookings", err)
	}
	return bookings, nil
}

// GetBooking returns the booking with id, or nil if there is none.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidBookingID
	}
	b, err := s.Bookings.GetByID(ctx, oid)
	if err != nil {
		return nil, storeError("get booking", err)
	}
	return b, nil
}

// ConfirmPayment records the payment and then marks the booking paid. The
// payment is written first so a failed insert never leaves a paid booking
// without its payment record.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, id string, conf models.PaymentConfirmation) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidBookingID
	}
	existing, err := s.Bookings.GetByID(ctx, oid)
	if err != nil {
		return nil, storeError("get booking", err)
	}
	if existing == nil {
		return nil, ErrBookingNotFound
	}

	amount := conf.Amount
	if amount == 0 {
		amount = existing.Price
	}
	payment := &models.Payment{
		BookingID:     oid,
		TransactionID: conf.TransactionID,
		PatientEmail:  existing.PatientEmail,
		Amount:        amount,
	}
	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, storeError("record payment", err)
	}

	updated, err := s.Bookings.MarkPaid(ctx, oid, conf.TransactionID)
	if err != nil {
		return nil, storeError("mark booking paid", err)
	}
	if updated == nil {
		// Deleted between lookup and update.
		return nil, ErrBookingNotFound
	}

	s.notify(ctx, models.NotificationPayload{
		PatientEmail: updated.PatientEmail,
		Type:         models.NotificationPaymentReceived,
		BookingID:    id,
		Treatment:    updated.Treatment,
		Date:         updated.Date,
		Slot:         updated.Slot,
		Transaction:  conf.TransactionID,
	})
	return updated, nil
}

// notify never fails the request; a lost notification is only logged.
func (s *DefaultBookingService) notify(ctx context.Context, p models.NotificationPayload) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, p); err != nil {
		s.logger().Warn("failed to queue notification", zap.String("type", p.Type), zap.Error(err))
	}
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
