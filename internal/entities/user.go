package entities

import "time"

// User represents a user entity in the database.
// PasswordHash is nil for accounts provisioned through Google login;
// those accounts can never authenticate with a password.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"` // nullable for legacy name-only rows
	PasswordHash *string   `json:"-"`               // never exposed in JSON
	CreatedAt    time.Time `json:"createdAt"`
}
