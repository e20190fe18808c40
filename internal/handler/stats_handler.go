package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cloudstay/internal/auth"
	apperrors "cloudstay/internal/errors"
	"cloudstay/internal/service"
)

// StatsHandler serves the dashboards.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// AdminStats godoc
// @Summary Platform statistics
// @Tags stats
// @Produce json
// @Success 200 {object} model.AdminStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /admin-stats [get]
func (h *StatsHandler) AdminStats(c echo.Context) error {
	stats, err := h.statsService.AdminStats(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// HostStats godoc
// @Summary The caller's hosting statistics
// @Tags stats
// @Produce json
// @Success 200 {object} model.HostStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /host-stats [get]
func (h *StatsHandler) HostStats(c echo.Context) error {
	id, ok := auth.IdentityFrom(c.Request().Context())
	if !ok {
		return mapError(c, apperrors.ErrUnauthorized)
	}
	stats, err := h.statsService.HostStats(c.Request().Context(), id.Email)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// GuestStats godoc
// @Summary The caller's booking statistics
// @Tags stats
// @Produce json
// @Success 200 {object} model.GuestStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /guest-stats [get]
func (h *StatsHandler) GuestStats(c echo.Context) error {
	id, ok := auth.IdentityFrom(c.Request().Context())
	if !ok {
		return mapError(c, apperrors.ErrUnauthorized)
	}
	stats, err := h.statsService.GuestStats(c.Request().Context(), id.Email)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
