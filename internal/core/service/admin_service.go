package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"
)

// AdminService implements the admin-only user listing and recipe collection.
// The recipe cache is optional; its failures are logged and never fail a request.
type AdminService struct {
	users   ports.UserRepository
	recipes ports.RecipeRepository
	cache   ports.RecipeCache
	log     zerolog.Logger
}

func NewAdminService(users ports.UserRepository, recipes ports.RecipeRepository, cache ports.RecipeCache, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, recipes: recipes, cache: cache, log: log}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]ports.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, ports.UserSummary{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}

func (s *AdminService) ListRecipes(ctx context.Context) ([]ports.RecipeSummary, error) {
	cacheable := false
	var generation int64
	if s.cache != nil {
		items, found, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("recipe cache read failed, falling back to store")
		case found:
			return items, nil
		}

		// Read before the store so a concurrent write invalidates this fill.
		if generation, err = s.cache.Generation(ctx); err != nil {
			s.log.Warn().Err(err).Msg("recipe cache generation read failed")
		} else {
			cacheable = true
		}
	}

	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	out := make([]ports.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeSummary(r))
	}

	if cacheable {
		stored, err := s.cache.Set(ctx, generation, out)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("recipe cache write failed")
		case !stored:
			s.log.Debug().Int64("generation", generation).Msg("recipe cache fill skipped after concurrent write")
		}
	}
	return out, nil
}

func (s *AdminService) CreateRecipe(ctx context.Context, in ports.CreateRecipeInput) (*ports.RecipeSummary, error) {
	r := &domain.Recipe{
		Title:        strings.TrimSpace(in.Title),
		Category:     strings.TrimSpace(in.Category),
		Area:         strings.TrimSpace(in.Area),
		ImageURL:     strings.TrimSpace(in.ImageURL),
		YoutubeURL:   strings.TrimSpace(in.YoutubeURL),
		Instructions: strings.TrimSpace(in.Instructions),
		CreatedBy:    in.CreatedBy,
	}
	if err := validateRecipe(r); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	created, err := s.recipes.Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	s.invalidate(ctx)

	s.log.Info().Str("recipe_id", created.ID).Str("created_by", created.CreatedBy).Msg("recipe created")
	summary := toRecipeSummary(created)
	return &summary, nil
}

func (s *AdminService) DeleteRecipe(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.NewValidationError("Recipe id is required.")
	}

	if err := s.recipes.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)

	s.log.Info().Str("recipe_id", id).Msg("recipe deleted")
	return nil
}

func (s *AdminService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("recipe cache invalidation failed")
	}
}

func validateRecipe(r *domain.Recipe) error {
	if r.Title == "" || r.Category == "" || r.Instructions == "" {
		return domain.NewValidationError("title, category, and instructions are required.")
	}

	limits := []struct {
		field string
		value string
		max   int
	}{
		{"title", r.Title, domain.RecipeTitleMaxLen},
		{"category", r.Category, domain.RecipeCategoryMaxLen},
		{"area", r.Area, domain.RecipeAreaMaxLen},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return domain.NewValidationError(fmt.Sprintf("%s must be at most %d characters.", l.field, l.max))
		}
	}
	return nil
}

func toRecipeSummary(r *domain.Recipe) ports.RecipeSummary {
	return ports.RecipeSummary{
		ID:         r.ID,
		Title:      r.Title,
		Category:   r.Category,
		Area:       r.Area,
		ImageURL:   r.ImageURL,
		YoutubeURL: r.YoutubeURL,
		CreatedAt:  r.CreatedAt,
	}
}
