package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cloudstay/internal/model"
	"cloudstay/internal/service"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// BookingRequest represents a paid reservation.
type BookingRequest struct {
	RoomID        string          `json:"roomId" validate:"required"`
	Title         string          `json:"title"`
	Location      string          `json:"location"`
	Category      string          `json:"category"`
	Image         string          `json:"image"`
	Guest         PartyRequest    `json:"guest" validate:"required"`
	Host          PartyRequest    `json:"host" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	From          *time.Time      `json:"from"`
	To            *time.Time      `json:"to"`
	Date          *time.Time      `json:"date"`
	TransactionID string          `json:"transactionId" validate:"required"`
}

// CreateBooking godoc
// @Summary Book a room
// @Description Stores the booking and notifies guest and host. An Idempotency-Key header replays the first successful response.
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replay key"
// @Param request body BookingRequest true "Booking"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req BookingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.bookingService.CreateBooking(c.Request().Context(), &model.Booking{
		RoomID:        req.RoomID,
		Title:         req.Title,
		Location:      req.Location,
		Category:      req.Category,
		Image:         req.Image,
		Guest:         req.Guest.toModel(),
		Host:          req.Host.toModel(),
		Price:         req.Price,
		From:          req.From,
		To:            req.To,
		Date:          timeOrZero(req.Date),
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListGuestBookings godoc
// @Summary List a guest's bookings
// @Tags bookings
// @Produce json
// @Param email path string true "Guest email"
// @Success 200 {array} model.Booking
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /my-bookings/{email} [get]
func (h *BookingHandler) ListGuestBookings(c echo.Context) error {
	bookings, err := h.bookingService.ListGuestBookings(c.Request().Context(), c.Param("email"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListHostBookings godoc
// @Summary List bookings of a host's rooms
// @Tags bookings
// @Produce json
// @Param email path string true "Host email"
// @Success 200 {array} model.Booking
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /manage-bookings/{email} [get]
func (h *BookingHandler) ListHostBookings(c echo.Context) error {
	bookings, err := h.bookingService.ListHostBookings(c.Request().Context(), c.Param("email"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// DeleteBooking godoc
// @Summary Cancel a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} model.DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	res, err := h.bookingService.DeleteBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
