package models

import "time"

// MealPlan is a user's weekly plan in the mealPlans collection. Days maps a
// weekday name ("monday"...) to the meals planned for it.
type MealPlan struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Name      string             `json:"name"`
	Week      string             `json:"week"`
	Days      map[string]DayPlan `json:"planData"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// DayPlan holds the meal slots for a single day.
type DayPlan struct {
	Breakfast string `json:"breakfast,omitempty"`
	Lunch     string `json:"lunch,omitempty"`
	Dinner    string `json:"dinner,omitempty"`
	Snacks    string `json:"snacks,omitempty"`
}
