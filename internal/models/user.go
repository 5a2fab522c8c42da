package models

import "time"

// User is a registered account stored in the users collection.
// IDs are opaque UUID strings everywhere in the system; the store never
// compares identities numerically.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	DisplayName  string    `json:"displayName"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Sanitized returns a copy safe to hand to API callers.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
