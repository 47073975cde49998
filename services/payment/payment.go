package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"doctorsportal/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// ErrInvalidAmount is returned for prices that do not convert to a positive amount.
var ErrInvalidAmount = errors.New("invalid payment amount")

// IntentCreator is the part of the Stripe PaymentIntent client the handler needs.
type IntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price float64) (*models.PaymentIntent, error)
}

// StripePaymentService creates card PaymentIntents.
type StripePaymentService struct {
	intents  IntentCreator
	currency string
	logger   *zap.Logger
}

// NewStripePaymentService builds a service backed by a Stripe API client for key.
func NewStripePaymentService(key, currency string, logger *zap.Logger) *StripePaymentService {
	sc := &client.API{}
	sc.Init(key, nil)
	return NewPaymentService(sc.PaymentIntents, currency, logger)
}

func NewPaymentService(intents IntentCreator, currency string, logger *zap.Logger) *StripePaymentService {
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return &StripePaymentService{intents: intents, currency: currency, logger: logger}
}

// CreatePaymentIntent charges price, given in major currency units.
func (s *StripePaymentService) CreatePaymentIntent(ctx context.Context, price float64) (*models.PaymentIntent, error) {
	amount := int64(math.Round(price * 100))
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(s.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := s.intents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	s.logger.Info("payment intent created", zap.String("intent", pi.ID), zap.Int64("amount", amount))
	return &models.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
