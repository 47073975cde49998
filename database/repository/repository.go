package repository

import (
	bookingRepo "doctorsportal/database/repository/booking"
	doctorRepo "doctorsportal/database/repository/doctor"
	notificationRepo "doctorsportal/database/repository/notification"
	paymentRepo "doctorsportal/database/repository/payment"
	serviceRepo "doctorsportal/database/repository/service"
	userRepo "doctorsportal/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories groups every collection-backed repository of the portal.
type Repositories struct {
	Services      serviceRepo.ServiceRepository
	Bookings      bookingRepo.BookingRepository
	Users         userRepo.UserRepository
	Doctors       doctorRepo.DoctorRepository
	Payments      paymentRepo.PaymentRepository
	Notifications notificationRepo.NotificationRepository
}

// NewMongoRepositories builds all repositories on db. uniqueBookingKey selects
// the atomic booking admission path.
func NewMongoRepositories(db *mongo.Database, uniqueBookingKey bool) *Repositories {
	return &Repositories{
		Services:      serviceRepo.NewMongoServiceRepo(db),
		Bookings:      bookingRepo.NewMongoBookingRepo(db, uniqueBookingKey),
		Users:         userRepo.NewMongoUserRepo(db),
		Doctors:       doctorRepo.NewMongoDoctorRepo(db),
		Payments:      paymentRepo.NewMongoPaymentRepo(db),
		Notifications: notificationRepo.NewMongoNotificationRepo(db),
	}
}
