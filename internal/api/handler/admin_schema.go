package handler

import (
	"time"

	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"
)

type createRecipeRequest struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	Area         string `json:"area"`
	ImageURL     string `json:"imageUrl"     validate:"omitempty,max=2048"`
	YoutubeURL   string `json:"youtubeUrl"   validate:"omitempty,max=2048"`
	Instructions string `json:"instructions" validate:"max=20000"`
}

type userSummaryView struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

type usersResponse struct {
	Users []userSummaryView `json:"users"`
}

type recipesResponse struct {
	Recipes []ports.RecipeSummary `json:"recipes"`
}

type recipeResponse struct {
	Recipe ports.RecipeSummary `json:"recipe"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func toUserSummaryViews(users []ports.UserSummary) []userSummaryView {
	out := make([]userSummaryView, 0, len(users))
	for _, u := range users {
		out = append(out, userSummaryView{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out
}
