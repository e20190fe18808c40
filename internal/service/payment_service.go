package service

import (
	"context"

	"github.com/shopspring/decimal"

	"cloudstay/internal/logger"
	"cloudstay/internal/payment"
)

// PaymentService prepares payments for client-side confirmation.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (string, error)
}

type paymentService struct {
	gateway payment.Gateway
}

// NewPaymentService creates a new payment service.
func NewPaymentService(gateway payment.Gateway) PaymentService {
	if gateway == nil {
		gateway = payment.Disabled{}
	}
	return &paymentService{gateway: gateway}
}

// CreatePaymentIntent charges price (major units) and returns the client secret.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	cents, err := payment.ToCents(price)
	if err != nil {
		return "", err
	}

	secret, err := s.gateway.CreatePaymentIntent(ctx, cents)
	if err != nil {
		logger.ErrorContext(ctx, "payment intent failed", "amount_cents", cents, "error", err)
		return "", err
	}
	logger.InfoContext(ctx, "payment intent created", "amount_cents", cents)
	return secret, nil
}
