package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthorized is returned when the session token is missing or invalid.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrTokenExpired is returned when the session token is past its expiry.
	ErrTokenExpired = errors.New("session expired")
	// ErrForbidden is returned when the caller's role does not satisfy the route.
	ErrForbidden = errors.New("forbidden")
	// ErrUserNotFound is returned when no user record exists for an email.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoomNotFound is returned when a room does not exist.
	ErrRoomNotFound = errors.New("room not found")
	// ErrBookingNotFound is returned when a booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidID is returned when a path id is not a valid store identifier.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidAmount is returned when a price cannot be charged.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrPaymentUnavailable is returned when no payment gateway is configured or it is down.
	ErrPaymentUnavailable = errors.New("payment gateway unavailable")
	// ErrPaymentFailed is returned when the gateway rejects the request.
	ErrPaymentFailed = errors.New("payment failed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Forbidden shares 401 with Unauthorized; clients tell them apart by code.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return NewHTTPError(http.StatusUnauthorized, "unauthorized access", "TOKEN_EXPIRED")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, "unauthorized access", "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusUnauthorized, "unauthorized access", "FORBIDDEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrRoomNotFound):
		return NewHTTPError(http.StatusNotFound, ErrRoomNotFound.Error(), "ROOM_NOT_FOUND")
	case errors.Is(err, ErrBookingNotFound):
		return NewHTTPError(http.StatusNotFound, ErrBookingNotFound.Error(), "BOOKING_NOT_FOUND")
	case errors.Is(err, ErrInvalidID):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidID.Error(), "INVALID_ID")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidAmount.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrPaymentUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, ErrPaymentUnavailable.Error(), "PAYMENT_UNAVAILABLE")
	case errors.Is(err, ErrPaymentFailed):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "PAYMENT_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
