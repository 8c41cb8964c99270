package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"
)

type collection int

const (
	collectionFavorites collection = iota
	collectionSavedList
)

func (c collection) String() string {
	if c == collectionSavedList {
		return "saved_list"
	}
	return "favorites"
}

// UserService serves the authenticated user's own profile and meal collections.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) Me(ctx context.Context, userID string) (*ports.Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ports.Profile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Favorites: nonNil(user.Favorites),
		SavedList: nonNil(user.SavedList),
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *UserService) ToggleFavorite(ctx context.Context, userID, mealID string) (*ports.ToggleResult, error) {
	return s.toggle(ctx, userID, mealID, collectionFavorites)
}

func (s *UserService) ToggleSavedList(ctx context.Context, userID, mealID string) (*ports.ToggleResult, error) {
	return s.toggle(ctx, userID, mealID, collectionSavedList)
}

// toggle is read-modify-write on a single record; concurrent toggles for the
// same user resolve last writer wins.
func (s *UserService) toggle(ctx context.Context, userID, mealID string, col collection) (*ports.ToggleResult, error) {
	ref := strings.TrimSpace(mealID)
	if ref == "" {
		return nil, domain.NewValidationError("mealId is required.")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var added bool
	switch col {
	case collectionSavedList:
		user.SavedList, added = domain.Toggle(user.SavedList, ref)
	default:
		user.Favorites, added = domain.Toggle(user.Favorites, ref)
	}
	user.UpdatedAt = time.Now().UTC()

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("toggle %s: %w", col, err)
	}

	items := saved.Favorites
	if col == collectionSavedList {
		items = saved.SavedList
	}

	s.log.Debug().
		Str("user_id", userID).
		Str("collection", col.String()).
		Str("meal_id", ref).
		Bool("added", added).
		Msg("collection toggled")

	return &ports.ToggleResult{Added: added, Items: nonNil(items)}, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
