package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cloudstay/internal/errors"
	"cloudstay/internal/logger"
	"cloudstay/internal/model"
)

// SuccessResponse acknowledges session cookie changes.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// PartyRequest is the identity snapshot embedded in rooms and bookings.
type PartyRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
	Image string `json:"image"`
}

func (p PartyRequest) toModel() model.Party {
	return model.Party{Name: p.Name, Email: p.Email, Image: p.Image}
}

// mapError converts a service error into the JSON error response.
func mapError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "request failed", "path", c.Path(), "error", err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return nil
}

// Welcome godoc
// @Summary Welcome banner
// @Tags meta
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func Welcome(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to the CloudStay server! 🚀")
}

// timeOrZero dereferences an optional timestamp.
func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
