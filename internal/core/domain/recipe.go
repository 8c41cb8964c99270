package domain

import "time"

const (
	RecipeTitleMaxLen    = 80
	RecipeCategoryMaxLen = 40
	RecipeAreaMaxLen     = 40
)

// Recipe is an entry of the admin-curated collection.
type Recipe struct {
	ID           string
	Title        string
	Category     string
	Area         string
	ImageURL     string
	YoutubeURL   string
	Instructions string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
