package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "cloudstay/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// Gateway creates payment intents whose client secret the browser confirms.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)
}

// ToCents converts a price in major units to whole cents.
// Amounts below one cent are rejected.
func ToCents(price decimal.Decimal) (int64, error) {
	cents := price.Mul(hundred).Round(0)
	if cents.LessThan(decimal.NewFromInt(1)) {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, price)
	}
	return cents.IntPart(), nil
}

// Disabled is the gateway used when no payment provider is configured.
type Disabled struct{}

func (Disabled) CreatePaymentIntent(context.Context, int64) (string, error) {
	return "", apperrors.ErrPaymentUnavailable
}
