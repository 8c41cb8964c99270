package handler

import (
	"time"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"
)

type toggleRequest struct {
	MealID string `json:"mealId" validate:"required,max=64"`
}

type profileView struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Favorites []string    `json:"favorites"`
	SavedList []string    `json:"savedList"`
	CreatedAt time.Time   `json:"createdAt"`
}

type profileResponse struct {
	User profileView `json:"user"`
}

type toggleFavoriteResponse struct {
	OK        bool     `json:"ok"`
	Added     bool     `json:"added"`
	Favorites []string `json:"favorites"`
}

type toggleSavedListResponse struct {
	OK        bool     `json:"ok"`
	Added     bool     `json:"added"`
	SavedList []string `json:"savedList"`
}

func toProfileView(p *ports.Profile) profileView {
	return profileView{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		Role:      p.Role,
		Favorites: orEmpty(p.Favorites),
		SavedList: orEmpty(p.SavedList),
		CreatedAt: p.CreatedAt,
	}
}

// orEmpty keeps JSON arrays from rendering as null.
func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
