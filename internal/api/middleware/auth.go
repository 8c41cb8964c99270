package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"
)

const (
	ctxUserID = "userId"
	ctxRole   = "role"
)

const bearerScheme = "bearer"

// Auth verifies the bearer token and injects userId and role into the context.
// It never touches the user store; the role is trusted for the token's lifetime.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return domain.ErrMissingToken
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return err
			}

			c.Set(ctxUserID, claims.UserID)
			c.Set(ctxRole, claims.Role)

			return next(c)
		}
	}
}

// bearerToken extracts the token from "Bearer <token>". The scheme is matched
// case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// UserID returns the authenticated user id set by Auth, or "" when absent.
func UserID(c echo.Context) string {
	id, _ := c.Get(ctxUserID).(string)
	return id
}

// Role returns the authenticated role set by Auth, or "" when absent.
func Role(c echo.Context) domain.Role {
	role, _ := c.Get(ctxRole).(domain.Role)
	return role
}
