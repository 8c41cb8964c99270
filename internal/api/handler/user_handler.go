package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BaylaDeLemos/kusina-live-server/internal/api/metrics"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"
)

// UserHandler serves the authenticated user's own profile and collections.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Me returns the caller's profile.
//
// @Summary      Current user profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/user/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.users.Me(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{User: toProfileView(profile)})
}

// ToggleFavorite adds or removes a meal from the caller's favorites.
//
// @Summary      Toggle favorite
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      toggleRequest  true  "Meal reference"
// @Success      200   {object}  toggleFavoriteResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/user/favorites/toggle [post]
func (h *UserHandler) ToggleFavorite(c echo.Context) error {
	userID, mealID, err := h.toggleArgs(c)
	if err != nil {
		return err
	}

	res, err := h.users.ToggleFavorite(c.Request().Context(), userID, mealID)
	if err != nil {
		return err
	}
	metrics.CollectionTogglesTotal.WithLabelValues("favorites", metrics.ToggleAction(res.Added)).Inc()

	return c.JSON(http.StatusOK, toggleFavoriteResponse{OK: true, Added: res.Added, Favorites: orEmpty(res.Items)})
}

// ToggleSavedList adds or removes a meal from the caller's saved list.
//
// @Summary      Toggle saved list
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      toggleRequest  true  "Meal reference"
// @Success      200   {object}  toggleSavedListResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/user/list/toggle [post]
func (h *UserHandler) ToggleSavedList(c echo.Context) error {
	userID, mealID, err := h.toggleArgs(c)
	if err != nil {
		return err
	}

	res, err := h.users.ToggleSavedList(c.Request().Context(), userID, mealID)
	if err != nil {
		return err
	}
	metrics.CollectionTogglesTotal.WithLabelValues("savedList", metrics.ToggleAction(res.Added)).Inc()

	return c.JSON(http.StatusOK, toggleSavedListResponse{OK: true, Added: res.Added, SavedList: orEmpty(res.Items)})
}

func (h *UserHandler) toggleArgs(c echo.Context) (userID, mealID string, err error) {
	userID, err = currentUserID(c)
	if err != nil {
		return "", "", err
	}
	var req toggleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return "", "", err
	}
	return userID, req.MealID, nil
}
