package ports

import (
	"context"
	"time"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
)

// Profile is the authenticated user's own view of their record.
type Profile struct {
	ID        string
	Username  string
	Email     string
	Role      domain.Role
	Favorites []string
	SavedList []string
	CreatedAt time.Time
}

// ToggleResult reports the collection after a membership flip.
type ToggleResult struct {
	Added bool
	Items []string
}

// UserService covers the per-user endpoints behind the auth gate.
type UserService interface {
	Me(ctx context.Context, userID string) (*Profile, error)
	ToggleFavorite(ctx context.Context, userID, mealID string) (*ToggleResult, error)
	ToggleSavedList(ctx context.Context, userID, mealID string) (*ToggleResult, error)
}
