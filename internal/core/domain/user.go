package domain

import (
	"strings"
	"time"
)

// Role is the authorization level carried in a user's token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

const (
	UsernameMinLen    = 2
	UsernameMaxLen    = 30
	PasswordMinLength = 6
	// PasswordMaxBytes is bcrypt's input limit.
	PasswordMaxBytes = 72
)

// User models an account stored in the credential store.
// Favorites and SavedList hold external meal references and never contain duplicates.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Favorites    []string
	SavedList    []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the redacted projection returned alongside a token.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Public strips the password hash and collections.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// It is applied before every store write and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Toggle flips membership of ref in items. The returned slice keeps the order
// of the remaining entries and drops any duplicates already present.
func Toggle(items []string, ref string) (out []string, added bool) {
	seen := make(map[string]struct{}, len(items)+1)
	out = make([]string, 0, len(items)+1)
	found := false
	for _, it := range items {
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		if it == ref {
			found = true
			continue
		}
		out = append(out, it)
	}
	if !found {
		out = append(out, ref)
	}
	return out, !found
}
