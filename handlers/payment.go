package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/payment"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	PaymentSvc payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{PaymentSvc: svc}
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, getLogger(c), http.StatusBadRequest, "invalid price", err)
		return
	}
	intent, err := h.PaymentSvc.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			utils.JSONError(c, getLogger(c), http.StatusBadRequest, "invalid price", err)
			return
		}
		utils.JSONError(c, getLogger(c), http.StatusBadGateway, "failed to create payment intent", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}
