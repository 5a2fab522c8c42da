package models

import "time"

// UsageDateLayout is the calendar-date format stored in apiUsageStats.
const UsageDateLayout = "2006-01-02"

// UsageStats is the singleton apiUsageStats record (id "1"). It counts remote
// recipe API calls for the current day, process-wide across all users.
type UsageStats struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Count     int       `json:"count"`
	Limit     int       `json:"limit"`
	LastReset time.Time `json:"lastReset"`
}

// DailyRecipe is the singleton dailyRecipes record (id "1") pinning a
// recipe-of-the-day per calendar date.
type DailyRecipe struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Recipe *Recipe `json:"recipe"`
}
