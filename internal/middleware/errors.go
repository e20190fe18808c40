package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "cloudstay/internal/errors"
)

func toHTTPError(err error) *echo.HTTPError {
	mapped := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse()).SetInternal(err)
}
