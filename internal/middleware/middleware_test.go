package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudstay/internal/auth"
	"cloudstay/internal/cache"
	apperrors "cloudstay/internal/errors"
	"cloudstay/internal/model"
)

const testSecret = "test-secret"

type staticResolver map[string]model.Role

func (r staticResolver) ResolveRole(_ context.Context, email string) (model.Role, error) {
	if email == "broken@x.com" {
		return model.RoleNone, errors.New("store down")
	}
	return r[email], nil
}

func newTestEcho(codec *auth.SessionCodec, resolver auth.RoleResolver) *echo.Echo {
	e := echo.New()
	ok := func(c echo.Context) error {
		id, _ := auth.IdentityFrom(c.Request().Context())
		return c.JSON(http.StatusOK, map[string]string{"email": id.Email})
	}
	e.GET("/session", ok, RequireSession(codec))
	e.GET("/admin", ok, RequireSession(codec), RequireAdmin(resolver))
	e.GET("/host", ok, RequireSession(codec), RequireHost(resolver))
	e.GET("/unguarded-host", ok, RequireHost(resolver))
	return e
}

func request(t *testing.T, e *echo.Echo, path, token string) (*httptest.ResponseRecorder, apperrors.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body apperrors.ErrorResponse
	if rec.Code != http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func issue(t *testing.T, codec *auth.SessionCodec, email string) string {
	t.Helper()
	token, _, err := codec.Issue(auth.Identity{Email: email})
	require.NoError(t, err)
	return token
}

func TestRequireSession(t *testing.T) {
	codec := auth.NewSessionCodec(testSecret)
	e := newTestEcho(codec, staticResolver{})

	past := time.Now().Add(-8 * 24 * time.Hour)
	expired := issue(t, codec.WithClock(func() time.Time { return past }), "a@x.com")
	forged := issue(t, auth.NewSessionCodec("other-secret"), "a@x.com")

	tests := []struct {
		name     string
		token    string
		wantCode int
		wantErr  string
	}{
		{"missing cookie", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"tampered signature", forged, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"expired token", expired, http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{"valid token", issue(t, codec, "a@x.com"), http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := request(t, e, "/session", tt.token)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantErr, body.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, rec.Body.String(), "a@x.com")
			}
		})
	}
}

func TestRequireSession_IgnoresAuthorizationHeader(t *testing.T) {
	codec := auth.NewSessionCodec(testSecret)
	e := newTestEcho(codec, staticResolver{})

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issue(t, codec, "a@x.com"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGuards(t *testing.T) {
	codec := auth.NewSessionCodec(testSecret)
	resolver := staticResolver{
		"admin@x.com":   model.RoleAdmin,
		"host@x.com":    model.RoleHost,
		"guest@x.com":   model.RoleGuest,
		"pending@x.com": model.RolePendingRequest,
	}
	e := newTestEcho(codec, resolver)

	tests := []struct {
		path     string
		email    string
		wantCode int
		wantErr  string
	}{
		{"/admin", "admin@x.com", http.StatusOK, ""},
		{"/admin", "host@x.com", http.StatusUnauthorized, "FORBIDDEN"},
		{"/admin", "nobody@x.com", http.StatusUnauthorized, "FORBIDDEN"},
		{"/host", "host@x.com", http.StatusOK, ""},
		{"/host", "admin@x.com", http.StatusUnauthorized, "FORBIDDEN"},
		{"/host", "guest@x.com", http.StatusUnauthorized, "FORBIDDEN"},
		{"/host", "pending@x.com", http.StatusUnauthorized, "FORBIDDEN"},
		{"/host", "broken@x.com", http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.path+" as "+tt.email, func(t *testing.T) {
			rec, body := request(t, e, tt.path, issue(t, codec, tt.email))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantErr, body.Code)
		})
	}
}

func TestRoleGuard_WithoutSessionFailsClosed(t *testing.T) {
	codec := auth.NewSessionCodec(testSecret)
	e := newTestEcho(codec, staticResolver{"host@x.com": model.RoleHost})

	rec, body := request(t, e, "/unguarded-host", issue(t, codec, "host@x.com"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestIdempotency_PassesThroughWithoutRedis(t *testing.T) {
	calls := 0
	e := echo.New()
	e.POST("/bookings", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, map[string]int{"call": calls})
	}, Idempotency(nil, time.Hour))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{}"))
		req.Header.Set(HeaderIdempotencyKey, "k1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(HeaderIdempotentReplay))
	}
	assert.Equal(t, 2, calls)
}

func TestIdempotency_ReplaysFirstResponse(t *testing.T) {
	mr := miniredis.RunT(t)
	store := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = store.Close() })

	calls := 0
	e := echo.New()
	e.POST("/bookings", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, map[string]int{"n": calls})
	}, Idempotency(store, time.Hour))

	post := func(key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{}"))
		req.Header.Set(HeaderIdempotencyKey, key)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	first := post("k1")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Empty(t, first.Header().Get(HeaderIdempotentReplay))
	assert.JSONEq(t, `{"n":1}`, first.Body.String())

	second := post("k1")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get(HeaderIdempotentReplay))
	assert.JSONEq(t, `{"n":1}`, second.Body.String())
	assert.Equal(t, 1, calls)

	other := post("k2")
	assert.JSONEq(t, `{"n":2}`, other.Body.String())
	assert.Equal(t, 2, calls)
}

func TestIdempotency_DoesNotStoreFailures(t *testing.T) {
	mr := miniredis.RunT(t)
	store := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = store.Close() })

	calls := 0
	e := echo.New()
	e.POST("/bookings", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusBadRequest, map[string]string{"code": "VALIDATION_ERROR"})
	}, Idempotency(store, time.Hour))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{}"))
		req.Header.Set(HeaderIdempotencyKey, "k1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Header().Get(HeaderIdempotentReplay))
	}
	assert.Equal(t, 2, calls)
	assert.Empty(t, mr.Keys())
}

func TestRequestID_PropagatesHeader(t *testing.T) {
	e := echo.New()
	e.Use(RequestID(), RequestLogger())
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
}
