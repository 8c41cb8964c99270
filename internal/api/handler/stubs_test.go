package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"
)

type stubAccountService struct {
	signupFn func(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error)
	loginFn  func(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error)
}

func (s *stubAccountService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAccountService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	return s.loginFn(ctx, in)
}

type stubUserService struct {
	meFn       func(ctx context.Context, userID string) (*ports.Profile, error)
	favoriteFn func(ctx context.Context, userID, mealID string) (*ports.ToggleResult, error)
	savedFn    func(ctx context.Context, userID, mealID string) (*ports.ToggleResult, error)
}

func (s *stubUserService) Me(ctx context.Context, userID string) (*ports.Profile, error) {
	return s.meFn(ctx, userID)
}

func (s *stubUserService) ToggleFavorite(ctx context.Context, userID, mealID string) (*ports.ToggleResult, error) {
	return s.favoriteFn(ctx, userID, mealID)
}

func (s *stubUserService) ToggleSavedList(ctx context.Context, userID, mealID string) (*ports.ToggleResult, error) {
	return s.savedFn(ctx, userID, mealID)
}

type stubAdminService struct {
	listUsersFn   func(ctx context.Context) ([]ports.UserSummary, error)
	listRecipesFn func(ctx context.Context) ([]ports.RecipeSummary, error)
	createFn      func(ctx context.Context, in ports.CreateRecipeInput) (*ports.RecipeSummary, error)
	deleteFn      func(ctx context.Context, id string) error
}

func (s *stubAdminService) ListUsers(ctx context.Context) ([]ports.UserSummary, error) {
	return s.listUsersFn(ctx)
}

func (s *stubAdminService) ListRecipes(ctx context.Context) ([]ports.RecipeSummary, error) {
	return s.listRecipesFn(ctx)
}

func (s *stubAdminService) CreateRecipe(ctx context.Context, in ports.CreateRecipeInput) (*ports.RecipeSummary, error) {
	return s.createFn(ctx, in)
}

func (s *stubAdminService) DeleteRecipe(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

// newContext builds an echo context with the real validator. A non-empty
// userID simulates a request that already passed the Auth middleware.
func newContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("userId", userID)
	}
	return c, rec
}

