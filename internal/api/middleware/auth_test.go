package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
	"github.com/BaylaDeLemos/kusina-live-server/internal/infrastructure/auth"
)

func newTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return tokens
}

func runAuth(t *testing.T, tokens *auth.TokenService, header string) (echo.Context, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := Auth(tokens)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	err := h(c)
	return c, called, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := newTokens(t)
	signed, err := tokens.Issue("u-42", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	c, called, err := runAuth(t, tokens, "Bearer "+signed)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if UserID(c) != "u-42" {
		t.Fatalf("userId not set, got %q", UserID(c))
	}
	if Role(c) != domain.RoleAdmin {
		t.Fatalf("role not set, got %q", Role(c))
	}
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	tokens := newTokens(t)
	signed, _ := tokens.Issue("u-1", domain.RoleUser)

	_, called, err := runAuth(t, tokens, "bearer "+signed)
	if err != nil || !called {
		t.Fatalf("expected pass-through, err=%v called=%v", err, called)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	cases := map[string]string{
		"no header":      "",
		"wrong scheme":   "Basic dXNlcjpwYXNz",
		"scheme only":    "Bearer",
		"blank token":    "Bearer    ",
		"token no space": "Bearertoken",
	}
	tokens := newTokens(t)
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			_, called, err := runAuth(t, tokens, header)
			if called {
				t.Fatalf("next must not run")
			}
			if !errors.Is(err, domain.ErrMissingToken) {
				t.Fatalf("expected ErrMissingToken, got %v", err)
			}
		})
	}
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	_, called, err := runAuth(t, newTokens(t), "Bearer garbage")
	if called {
		t.Fatalf("next must not run")
	}
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	other, err := auth.NewTokenService("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	signed, _ := other.Issue("u-1", domain.RoleAdmin)

	_, _, err = runAuth(t, newTokens(t), "Bearer "+signed)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	tokens := newTokens(t).WithClock(func() time.Time { return issuedAt })
	signed, err := tokens.Issue("u-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, called, err := runAuth(t, newTokens(t), "Bearer "+signed)
	if called {
		t.Fatalf("next must not run")
	}
	if !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestContextHelpers_Empty(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if UserID(c) != "" || Role(c) != "" {
		t.Fatalf("expected empty claims on fresh context")
	}
}
