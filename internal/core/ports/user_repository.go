package ports

import (
	"context"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
)

// UserRepository is the credential store.
//
// Lookups return domain.ErrUserNotFound when no record matches. Create and Save
// return domain.ErrDuplicateEmail when the unique email index rejects the write;
// any other driver failure wraps domain.ErrStoreUnavailable.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	// List returns every user, newest first.
	List(ctx context.Context) ([]*domain.User, error)
}
