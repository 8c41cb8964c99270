package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
)

// RequireRole lets the request through only when the role set by Auth equals
// required. Mount it after Auth.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Role(c) != required {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
