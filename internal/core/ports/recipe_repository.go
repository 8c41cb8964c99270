package ports

import (
	"context"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
)

// RecipeRepository persists the admin-curated recipe collection.
type RecipeRepository interface {
	Create(ctx context.Context, r *domain.Recipe) (*domain.Recipe, error)
	// List returns every recipe, newest first.
	List(ctx context.Context) ([]*domain.Recipe, error)
	// Delete removes a recipe by id. Unknown or malformed ids yield domain.ErrRecipeNotFound.
	Delete(ctx context.Context, id string) error
}

// RecipeCache holds the rendered admin recipe list between writes.
// Get reports found=false on a miss. Every Invalidate bumps the generation;
// Set stores items only while the generation still equals the one read before
// the store was queried, so a listing that raced a write is never cached.
type RecipeCache interface {
	Get(ctx context.Context) (items []RecipeSummary, found bool, err error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, generation int64, items []RecipeSummary) (stored bool, err error)
	Invalidate(ctx context.Context) error
}
