package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves availability, booking and payment confirmation endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingSvc: svc}
}

// GetAvailable handles GET /available?date=.
func (h *BookingHandler) GetAvailable(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, getLogger(c), http.StatusBadRequest, "missing date", errors.New("query parameter 'date' is required"))
		return
	}

	services, err := h.BookingSvc.Available(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, getLogger(c), http.StatusInternalServerError, "failed to compute availability", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListBookings handles GET /booking?email=. Patients may only list their own bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = c.Query("patient")
	}
	if email != middleware.RequesterEmail(c) {
		getLogger(c).Warn("booking list denied", zap.String("requested", email))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.BookingSvc.ListForPatient(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, getLogger(c), http.StatusInternalServerError, "failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /booking/:id. An unknown booking yields null.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.BookingSvc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "failed to fetch booking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBooking handles POST /booking. A duplicate is reported with success=false
// and the existing booking, not as an HTTP error.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, getLogger(c), http.StatusBadRequest, "invalid booking", err)
		return
	}

	result, err := h.BookingSvc.Book(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, getLogger(c), http.StatusInternalServerError, "failed to create booking", err)
		return
	}
	if !result.Accepted {
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": result.Booking})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  gin.H{"insertedId": result.Booking.ID},
	})
}

// ConfirmPayment handles PATCH /booking/:id.
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	var req models.PaymentConfirmation
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, getLogger(c), http.StatusBadRequest, "invalid payment confirmation", err)
		return
	}

	updated, err := h.BookingSvc.ConfirmPayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, "failed to confirm payment", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BookingHandler) writeError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidBookingID):
		utils.JSONError(c, getLogger(c), http.StatusBadRequest, message, err)
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, getLogger(c), http.StatusNotFound, message, err)
	default:
		utils.JSONError(c, getLogger(c), http.StatusInternalServerError, message, err)
	}
}
