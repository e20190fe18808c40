package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cloudstay/internal/auth"
	"cloudstay/internal/errors"
)

// AuthHandler issues and clears session cookies.
type AuthHandler struct {
	codec      *auth.SessionCodec
	production bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(codec *auth.SessionCodec, production bool) *AuthHandler {
	return &AuthHandler{codec: codec, production: production}
}

// TokenRequest is the identity a session is issued for.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// IssueToken godoc
// @Summary Issue a session cookie
// @Description Signs a 7 day session token for the identity and sets it as the HTTP-only "token" cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Identity"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, expiresAt, err := h.codec.Issue(auth.Identity{Email: req.Email, Name: req.Name})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to issue session",
			Code:  "INTERNAL_ERROR",
		})
	}

	c.SetCookie(auth.SessionCookie(token, expiresAt, h.production))
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// SignOut godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /sign-out [get]
func (h *AuthHandler) SignOut(c echo.Context) error {
	c.SetCookie(auth.RevokedCookie(h.production))
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
