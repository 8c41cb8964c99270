package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/BaylaDeLemos/kusina-live-server/internal/api/metrics"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"
)

// AdminHandler serves the admin-only user listing and recipe collection.
// Routes must be mounted behind Auth and RequireRole(admin).
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListUsers returns every account, newest first.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: toUserSummaryViews(users)})
}

// ListRecipes returns the curated recipes, newest first.
//
// @Summary      List recipes
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  recipesResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/admin/recipes [get]
func (h *AdminHandler) ListRecipes(c echo.Context) error {
	recipes, err := h.admin.ListRecipes(c.Request().Context())
	if err != nil {
		return err
	}
	if recipes == nil {
		recipes = []ports.RecipeSummary{}
	}
	return c.JSON(http.StatusOK, recipesResponse{Recipes: recipes})
}

// CreateRecipe adds a recipe owned by the calling admin.
//
// @Summary      Create recipe
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRecipeRequest  true  "Recipe"
// @Success      201   {object}  recipeResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/admin/recipes [post]
func (h *AdminHandler) CreateRecipe(c echo.Context) error {
	adminID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createRecipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	recipe, err := h.admin.CreateRecipe(c.Request().Context(), ports.CreateRecipeInput{
		Title:        req.Title,
		Category:     req.Category,
		Area:         req.Area,
		ImageURL:     req.ImageURL,
		YoutubeURL:   req.YoutubeURL,
		Instructions: req.Instructions,
		CreatedBy:    adminID,
	})
	if err != nil {
		return err
	}
	metrics.RecipesCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, recipeResponse{Recipe: *recipe})
}

// DeleteRecipe removes a recipe by id.
//
// @Summary      Delete recipe
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recipe id"
// @Success      200  {object}  okResponse
// @Failure      400  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/admin/recipes/{id} [delete]
func (h *AdminHandler) DeleteRecipe(c echo.Context) error {
	if err := h.admin.DeleteRecipe(c.Request().Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		return err
	}
	metrics.RecipesDeletedTotal.Inc()

	return c.JSON(http.StatusOK, okResponse{OK: true})
}
