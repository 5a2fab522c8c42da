package models

import "time"

// Difficulty levels accepted for custom recipes.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// CustomRecipe is a user-authored recipe in the customRecipes collection.
// Only the owner (OwnerID) may edit or delete it; reads are unrestricted.
// TotalTime is advisory and maintained by the caller, never recomputed here.
type CustomRecipe struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"userId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Servings     int       `json:"servings"`
	PrepTime     int       `json:"prepTime"`
	CookTime     int       `json:"cookTime"`
	TotalTime    int       `json:"totalTime"`
	Difficulty   string    `json:"difficulty"`
	Cuisine      string    `json:"cuisine"`
	Category     string    `json:"category"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	Tags         []string  `json:"tags"`
	IsPublic     bool      `json:"isPublic"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
