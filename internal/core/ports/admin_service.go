package ports

import (
	"context"
	"time"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
)

// UserSummary is a row of the admin user listing.
type UserSummary struct {
	ID        string
	Username  string
	Email     string
	Role      domain.Role
	CreatedAt time.Time
}

// RecipeSummary is a row of the admin recipe listing. It is also the cached form.
type RecipeSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Area       string    `json:"area"`
	ImageURL   string    `json:"imageUrl"`
	YoutubeURL string    `json:"youtubeUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateRecipeInput carries the admin form fields plus the creating admin's id.
type CreateRecipeInput struct {
	Title        string
	Category     string
	Area         string
	ImageURL     string
	YoutubeURL   string
	Instructions string
	CreatedBy    string
}

// AdminService covers the admin-only endpoints.
type AdminService interface {
	ListUsers(ctx context.Context) ([]UserSummary, error)
	ListRecipes(ctx context.Context) ([]RecipeSummary, error)
	CreateRecipe(ctx context.Context, in CreateRecipeInput) (*RecipeSummary, error)
	DeleteRecipe(ctx context.Context, id string) error
}
