package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cloudstay/internal/model"
	"cloudstay/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SignInRequest is the profile sent on every sign-in.
type SignInRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// SaveUser godoc
// @Summary Sign-in upsert
// @Description Creates the user on first sign-in. For a known email, status "Requested" records a host request; otherwise the stored record is returned unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Param request body SignInRequest true "User profile"
// @Success 200 {object} model.UpdateResult "write acknowledgement, or the existing model.User"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [put]
func (h *UserHandler) SaveUser(c echo.Context) error {
	var req SignInRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.userService.SignIn(c.Request().Context(), &model.User{
		Email:  req.Email,
		Name:   req.Name,
		Image:  req.Image,
		Role:   req.Role,
		Status: req.Status,
	})
	if err != nil {
		return mapError(c, err)
	}
	if res.Existing != nil {
		return c.JSON(http.StatusOK, res.Existing)
	}
	return c.JSON(http.StatusOK, res.Result)
}

// GetUser godoc
// @Summary Get a user by email
// @Description Requires a session cookie. Responds with null when no record exists.
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /users/{email} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userService.GetUser(c.Request().Context(), c.Param("email"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser godoc
// @Summary Update a user's role or status
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param request body model.UserUpdate true "Fields to overwrite"
// @Success 200 {object} model.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security CookieAuth
// @Router /users/update/{email} [patch]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req model.UserUpdate
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.userService.UpdateUser(c.Request().Context(), c.Param("email"), req)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
