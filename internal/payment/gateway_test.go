package payment

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	apperrors "cloudstay/internal/errors"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		price   string
		want    int64
		wantErr bool
	}{
		{"120", 12000, false},
		{"80.50", 8050, false},
		{"0.01", 1, false},
		{"0.004", 0, true},
		{"0", 0, true},
		{"-5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			got, err := ToCents(decimal.RequireFromString(tt.price))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.CreatePaymentIntent(context.Background(), 100)
	assert.ErrorIs(t, err, apperrors.ErrPaymentUnavailable)
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeGatewayWithBackends("sk_test_123", "usd", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	var form url.Values
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, _ = url.ParseQuery(string(body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","client_secret":"pi_1_secret_abc","status":"requires_payment_method"}`))
	})

	secret, err := gw.CreatePaymentIntent(context.Background(), 12000)

	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret_abc", secret)
	assert.Equal(t, "12000", form.Get("amount"))
	assert.Equal(t, "usd", form.Get("currency"))
	assert.Equal(t, "true", form.Get("automatic_payment_methods[enabled]"))
}

func TestStripeGateway_MapsErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"card declined", http.StatusPaymentRequired, apperrors.ErrPaymentFailed},
		{"provider down", http.StatusServiceUnavailable, apperrors.ErrPaymentUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
			})

			_, err := gw.CreatePaymentIntent(context.Background(), 500)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStripeGateway_RejectsNonPositiveAmount(t *testing.T) {
	gw := NewStripeGateway("sk_test_123", "usd")
	_, err := gw.CreatePaymentIntent(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}
