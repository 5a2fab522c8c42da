package models

import "time"

// Favorite links a user to a remote recipe in the favorites collection.
// At most one Favorite exists per (UserID, RecipeID) pair; the ledger checks
// for an existing row before inserting.
type Favorite struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	RecipeID       int64     `json:"recipeId"`
	Title          string    `json:"title"`
	Image          string    `json:"image"`
	ReadyInMinutes int       `json:"readyInMinutes"`
	Servings       int       `json:"servings"`
	Summary        string    `json:"summary"`
	AddedAt        time.Time `json:"addedAt"`
}
