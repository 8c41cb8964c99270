package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BaylaDeLemos/kusina-live-server/internal/api/middleware"
)

// currentUserID returns the user id injected by the Auth middleware. An empty
// id means the route was mounted without Auth; reject with 401.
func currentUserID(c echo.Context) (string, error) {
	id := middleware.UserID(c)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized.")
	}
	return id, nil
}
