package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"
)

// AccountService implements signup and login.
type AccountService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAccountService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *AccountService {
	return &AccountService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Signup validates the payload, rejects an already registered email, stores a
// new user with the "user" role and returns a token for it.
func (s *AccountService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	username := strings.TrimSpace(in.Username)
	email := domain.NormalizeEmail(in.Email)

	if username == "" || email == "" || in.Password == "" {
		return nil, domain.NewValidationError("username, email, and password are required.")
	}
	if n := utf8.RuneCountInString(username); n < domain.UsernameMinLen || n > domain.UsernameMaxLen {
		return nil, domain.NewValidationError(fmt.Sprintf("Username must be between %d and %d characters.", domain.UsernameMinLen, domain.UsernameMaxLen))
	}
	if utf8.RuneCountInString(in.Password) < domain.PasswordMinLength {
		return nil, domain.NewValidationError(fmt.Sprintf("Password must be at least %d characters.", domain.PasswordMinLength))
	}
	if len(in.Password) > domain.PasswordMaxBytes {
		return nil, domain.NewValidationError(fmt.Sprintf("Password must be at most %d bytes.", domain.PasswordMaxBytes))
	}

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateEmail
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("signup: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Favorites:    []string{},
		SavedList:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// A concurrent signup can pass the lookup above; the unique index catches it.
		if errors.Is(err, domain.ErrDuplicateEmail) {
			s.log.Debug().Msg("signup rejected by unique email index")
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("signup: %w", err)
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, fmt.Errorf("signup: issue token: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Msg("user signed up")
	return &ports.AuthResult{Token: token, User: created.Public()}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password both yield domain.ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.NewValidationError("email and password are required.")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.AuthResult{Token: token, User: user.Public()}, nil
}
