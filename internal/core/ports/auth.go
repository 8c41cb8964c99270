package ports

import "github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"

// PasswordHasher is the only component allowed to see plaintext passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenService issues and verifies signed bearer tokens.
//
// Verify returns domain.ErrExpiredToken once the expiry has passed and
// domain.ErrInvalidToken for any signature or structural failure.
type TokenService interface {
	Issue(userID string, role domain.Role) (string, error)
	Verify(token string) (*domain.Claims, error)
}
