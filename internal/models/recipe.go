package models

import "time"

// Recipe is a recipe payload as returned by the remote recipe API. The same
// shape is persisted verbatim in the cachedRecipes collection, plus CachedAt.
// Cached entries are immutable; they are never updated in place.
type Recipe struct {
	ID                    int64                `json:"id"`
	Title                 string               `json:"title"`
	Image                 string               `json:"image"`
	ReadyInMinutes        int                  `json:"readyInMinutes"`
	Servings              int                  `json:"servings"`
	Summary               string               `json:"summary"`
	SourceURL             string               `json:"sourceUrl,omitempty"`
	Instructions          string               `json:"instructions,omitempty"`
	Vegetarian            bool                 `json:"vegetarian"`
	Vegan                 bool                 `json:"vegan"`
	GlutenFree            bool                 `json:"glutenFree"`
	DairyFree             bool                 `json:"dairyFree"`
	Cuisines              []string             `json:"cuisines,omitempty"`
	DishTypes             []string             `json:"dishTypes,omitempty"`
	Diets                 []string             `json:"diets,omitempty"`
	ExtendedIngredients   []Ingredient         `json:"extendedIngredients,omitempty"`
	AnalyzedInstructions  []InstructionSet     `json:"analyzedInstructions,omitempty"`
	Nutrition             *Nutrition           `json:"nutrition,omitempty"`
	CachedAt              time.Time            `json:"cachedAt,omitempty"`
}

// Ingredient is a single entry of a remote recipe's ingredient list.
type Ingredient struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Original string  `json:"original"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
}

// InstructionSet groups ordered preparation steps.
type InstructionSet struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// Step is one numbered instruction.
type Step struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// Nutrition carries the remote API's nutrient breakdown.
type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// Nutrient is a single named nutrient value.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Valid reports whether a cached entry is well formed enough to serve.
// Malformed rows (missing id or title) are filtered out of fallback results.
func (r Recipe) Valid() bool {
	return r.ID != 0 && r.Title != ""
}
