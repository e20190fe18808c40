package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "cloudstay/internal/errors"
)

// SessionTokenExpiry is the fixed lifetime of a session token.
const SessionTokenExpiry = 7 * 24 * time.Hour

var (
	// ErrInvalidToken is returned for malformed tokens and signature mismatches.
	ErrInvalidToken = fmt.Errorf("invalid session token: %w", apperrors.ErrUnauthorized)
	// ErrExpired is returned for well-signed tokens past their expiry.
	ErrExpired = apperrors.ErrTokenExpired
)

// Identity is who a session token speaks for.
type Identity struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty"`
}

// Claims represents session token claims.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// SessionCodec issues and verifies stateless session tokens.
type SessionCodec struct {
	secret []byte
	now    func() time.Time
}

// NewSessionCodec creates a codec signing with the given secret.
func NewSessionCodec(secret string) *SessionCodec {
	return &SessionCodec{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// WithClock returns a copy of the codec that reads time from now.
func (s *SessionCodec) WithClock(now func() time.Time) *SessionCodec {
	return &SessionCodec{secret: s.secret, now: now}
}

// Issue signs a token for the identity and returns it with its expiry.
// Every call computes a fresh expiry and token id.
func (s *SessionCodec) Issue(id Identity) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(SessionTokenExpiry)
	claims := &Claims{
		Email: strings.TrimSpace(id.Email),
		Name:  id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strings.TrimSpace(id.Email),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify checks the signature and expiry of a token and returns its identity.
func (s *SessionCodec) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	now := s.now()
	if !claims.VerifyExpiresAt(now, true) {
		return nil, ErrExpired
	}
	if !claims.VerifyNotBefore(now, false) {
		return nil, ErrInvalidToken
	}

	return &Identity{Email: claims.Email, Name: claims.Name}, nil
}
