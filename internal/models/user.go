package models

import "time"

// User is an account that owns tasks. Words are shared catalog state
// and are never owned by a user.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Level        Level
	CreatedAt    time.Time
}
