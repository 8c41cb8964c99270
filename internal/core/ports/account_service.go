package ports

import (
	"context"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
)

// SignupInput is the signup payload after transport decoding.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput is the login payload after transport decoding.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is returned by a successful signup or login.
type AuthResult struct {
	Token string
	User  domain.PublicUser
}

// AccountService owns signup and login.
type AccountService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
}
