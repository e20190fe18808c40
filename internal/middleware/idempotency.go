package middleware

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cloudstay/internal/auth"
	"cloudstay/internal/cache"
)

const (
	// HeaderIdempotencyKey carries the client chosen replay key.
	HeaderIdempotencyKey = "Idempotency-Key"
	// HeaderIdempotentReplay marks a response served from the replay store.
	HeaderIdempotentReplay = "Idempotent-Replayed"
)

type savedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// Idempotency replays the first successful response for the same caller and
// Idempotency-Key for ttl. Without a key or a redis server requests pass through.
func Idempotency(store *cache.Client, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			key := req.Header.Get(HeaderIdempotencyKey)
			if key == "" || req.Method != http.MethodPost || !store.Enabled() {
				return next(c)
			}

			ctx := req.Context()
			caller := ""
			if id, ok := auth.IdentityFrom(ctx); ok {
				caller = id.Email
			}
			cacheKey := fmt.Sprintf("idempotency:%x", sha256.Sum256([]byte(caller+"\x00"+key)))

			var saved savedResponse
			if store.GetJSON(ctx, cacheKey, &saved) {
				c.Response().Header().Set(HeaderIdempotentReplay, "true")
				return c.JSONBlob(saved.Status, saved.Body)
			}

			rec := &responseRecorder{ResponseWriter: c.Response().Writer}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				return err
			}

			status := c.Response().Status
			if status >= 200 && status < 300 && json.Valid(rec.body) {
				store.SetJSON(ctx, cacheKey, savedResponse{Status: status, Body: rec.body}, ttl)
			}
			return nil
		}
	}
}

type responseRecorder struct {
	http.ResponseWriter
	body []byte
}

func (r *responseRecorder) Write(body []byte) (int, error) {
	r.body = append(r.body, body...)
	return r.ResponseWriter.Write(body)
}
