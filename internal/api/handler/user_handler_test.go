package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"
)

func TestUserHandler_Me(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubUserService{
		meFn: func(_ context.Context, userID string) (*ports.Profile, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return &ports.Profile{ID: "u1", Username: "bayla", Email: "bay@ex.com", Role: domain.RoleUser, Favorites: []string{"52772"}, CreatedAt: created}, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/api/user/me", "", "u1")
	if err := NewUserHandler(stub).Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		User map[string]any `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.User["id"] != "u1" || resp.User["username"] != "bayla" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	if saved, ok := resp.User["savedList"].([]any); !ok || len(saved) != 0 {
		t.Fatalf("savedList must render as an empty array, got %v", resp.User["savedList"])
	}
	if resp.User["createdAt"] != "2025-03-01T12:00:00Z" {
		t.Fatalf("unexpected createdAt: %v", resp.User["createdAt"])
	}
}

func TestUserHandler_Me_NoAuthContext(t *testing.T) {
	stub := &stubUserService{}
	c, _ := newContext(http.MethodGet, "/api/user/me", "", "")
	err := NewUserHandler(stub).Me(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestUserHandler_Me_NotFound(t *testing.T) {
	stub := &stubUserService{
		meFn: func(context.Context, string) (*ports.Profile, error) { return nil, domain.ErrUserNotFound },
	}
	c, _ := newContext(http.MethodGet, "/api/user/me", "", "u1")
	if err := NewUserHandler(stub).Me(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_ToggleFavorite(t *testing.T) {
	stub := &stubUserService{
		favoriteFn: func(_ context.Context, userID, mealID string) (*ports.ToggleResult, error) {
			if userID != "u1" || mealID != "52772" {
				t.Fatalf("unexpected args %q %q", userID, mealID)
			}
			return &ports.ToggleResult{Added: true, Items: []string{"52772"}}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/api/user/favorites/toggle", `{"mealId":"52772"}`, "u1")
	if err := NewUserHandler(stub).ToggleFavorite(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp toggleFavoriteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.OK || !resp.Added || len(resp.Favorites) != 1 || resp.Favorites[0] != "52772" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_ToggleSavedList_Removed(t *testing.T) {
	stub := &stubUserService{
		savedFn: func(context.Context, string, string) (*ports.ToggleResult, error) {
			return &ports.ToggleResult{Added: false}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/api/user/list/toggle", `{"mealId":"52772"}`, "u1")
	if err := NewUserHandler(stub).ToggleSavedList(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["ok"] != true || resp["added"] != false {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if items, ok := resp["savedList"].([]any); !ok || len(items) != 0 {
		t.Fatalf("savedList must be an empty array, got %v", resp["savedList"])
	}
}

func TestUserHandler_Toggle_MissingMealID(t *testing.T) {
	stub := &stubUserService{
		favoriteFn: func(context.Context, string, string) (*ports.ToggleResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	c, _ := newContext(http.MethodPost, "/api/user/favorites/toggle", `{}`, "u1")
	err := NewUserHandler(stub).ToggleFavorite(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Message != "mealId is required." {
		t.Fatalf("expected mealId validation error, got %v", err)
	}
}
