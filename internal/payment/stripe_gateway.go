package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	apperrors "cloudstay/internal/errors"
)

// StripeGateway creates payment intents through the Stripe API.
type StripeGateway struct {
	client   *client.API
	currency string
}

// NewStripeGateway creates a gateway authenticated with the secret key.
func NewStripeGateway(apiKey, currency string) *StripeGateway {
	return NewStripeGatewayWithBackends(apiKey, currency, nil)
}

// NewStripeGatewayWithBackends is NewStripeGateway with explicit API backends.
func NewStripeGatewayWithBackends(apiKey, currency string, backends *stripe.Backends) *StripeGateway {
	sc := &client.API{}
	sc.Init(apiKey, backends)
	return &StripeGateway{client: sc, currency: currency}
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error) {
	if amountCents < 1 {
		return "", apperrors.ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(g.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := g.client.PaymentIntents.New(params)
	if err != nil {
		return "", mapStripeError(err)
	}
	return pi.ClientSecret, nil
}

// mapStripeError converts stripe errors into domain errors.
func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode >= http.StatusInternalServerError || stripeErr.HTTPStatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: %s", apperrors.ErrPaymentUnavailable, stripeErr.Msg)
		}
		return fmt.Errorf("%w: %s (%s)", apperrors.ErrPaymentFailed, stripeErr.Msg, stripeErr.Code)
	}
	return fmt.Errorf("%w: %v", apperrors.ErrPaymentUnavailable, err)
}
