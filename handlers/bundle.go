package handlers

import (
	"doctorsportal/middleware"
	"doctorsportal/utils"
)

// HandlerBundle groups all endpoint handlers and what the route guards need.
type HandlerBundle struct {
	Tokens *utils.TokenManager
	Admins middleware.AdminChecker
	Health *utils.HealthMonitor

	Services      *ServiceHandler
	Users         *UserHandler
	Bookings      *BookingHandler
	Doctors       *DoctorHandler
	Payments      *PaymentHandler
	Notifications *NotificationHandler
}
