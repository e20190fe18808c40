package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cloudstay/internal/model"
	"cloudstay/internal/service"
)

// RoomHandler handles room endpoints.
type RoomHandler struct {
	roomService service.RoomService
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// RoomRequest represents a new room listing.
type RoomRequest struct {
	Title       string          `json:"title" validate:"required"`
	Location    string          `json:"location"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Guests      int             `json:"guests" validate:"gte=0"`
	Bedrooms    int             `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int             `json:"bathrooms" validate:"gte=0"`
	From        *time.Time      `json:"from"`
	To          *time.Time      `json:"to"`
	Host        PartyRequest    `json:"host" validate:"required"`
	Booked      bool            `json:"booked"`
}

// RoomStatusRequest sets the booked flag.
type RoomStatusRequest struct {
	Status *bool `json:"status" validate:"required"`
}

// ListRooms godoc
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param category query string false "Category filter; the literal null is ignored"
// @Success 200 {array} model.Room
// @Failure 500 {object} errors.ErrorResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.roomService.ListRooms(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, rooms)
}

// CreateRoom godoc
// @Summary Add a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body RoomRequest true "Room"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req RoomRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.roomService.CreateRoom(c.Request().Context(), &model.Room{
		Title:       req.Title,
		Location:    req.Location,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
		Price:       req.Price,
		Guests:      req.Guests,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		From:        req.From,
		To:          req.To,
		Host:        req.Host.toModel(),
		Booked:      req.Booked,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// GetRoom godoc
// @Summary Get a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} model.Room
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c echo.Context) error {
	room, err := h.roomService.GetRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// ListHostRooms godoc
// @Summary List a host's rooms
// @Tags rooms
// @Produce json
// @Param email path string true "Host email"
// @Success 200 {array} model.Room
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /my-listings/{email} [get]
func (h *RoomHandler) ListHostRooms(c echo.Context) error {
	rooms, err := h.roomService.ListHostRooms(c.Request().Context(), c.Param("email"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, rooms)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Description Any host may delete any room; ownership is not checked.
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} model.DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	res, err := h.roomService.DeleteRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// UpdateStatus godoc
// @Summary Set a room's booked flag
// @Description Requires a session cookie.
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body RoomStatusRequest true "Booked flag"
// @Success 200 {object} model.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /rooms/status/{id} [patch]
func (h *RoomHandler) UpdateStatus(c echo.Context) error {
	var req RoomStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.roomService.SetBooked(c.Request().Context(), c.Param("id"), *req.Status)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// UpdateRoom godoc
// @Summary Edit a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body model.RoomUpdate true "Fields to overwrite"
// @Success 200 {object} model.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /rooms/update/{id} [put]
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	var req model.RoomUpdate
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.roomService.UpdateRoom(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
