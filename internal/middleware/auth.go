package middleware

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"cloudstay/internal/auth"
	apperrors "cloudstay/internal/errors"
	"cloudstay/internal/logger"
	"cloudstay/internal/model"
)

// IdentityContextKey is where the authenticated identity is stored on the echo context.
const IdentityContextKey = "identity"

const sessionErrorKey = "session_error"

// RequireSession is the Authentication Guard. It reads the session cookie only,
// verifies it and attaches the identity to the request context. Roles are not consulted.
func RequireSession(codec *auth.SessionCodec) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + auth.CookieName,
		ContextKey:  IdentityContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			ctx, err := auth.Authenticate(c.Request().Context(), codec, token)
			if err != nil {
				c.Set(sessionErrorKey, err)
				return nil, err
			}
			id, _ := auth.IdentityFrom(ctx)
			ctx = logger.ContextWithUserEmail(ctx, id.Email)
			c.SetRequest(c.Request().WithContext(ctx))
			return id, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if cause, ok := c.Get(sessionErrorKey).(error); ok {
				err = cause
			}
			if errors.Is(err, apperrors.ErrTokenExpired) {
				return toHTTPError(apperrors.ErrTokenExpired)
			}
			return toHTTPError(errors.Join(apperrors.ErrUnauthorized, err))
		},
	})
}

// RequireRole is an Authorization Guard. It must run after RequireSession; without
// an identity on the request it fails closed.
func RequireRole(resolver auth.RoleResolver, role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, err := auth.Authorize(c.Request().Context(), resolver, role)
			if err != nil {
				if !errors.Is(err, apperrors.ErrForbidden) && !errors.Is(err, apperrors.ErrUnauthorized) {
					logger.ErrorContext(ctx, "role resolution failed", "error", err)
				}
				return toHTTPError(err)
			}
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireAdmin admits only admins.
func RequireAdmin(resolver auth.RoleResolver) echo.MiddlewareFunc {
	return RequireRole(resolver, model.RoleAdmin)
}

// RequireHost admits only hosts.
func RequireHost(resolver auth.RoleResolver) echo.MiddlewareFunc {
	return RequireRole(resolver, model.RoleHost)
}
