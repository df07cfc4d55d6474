package models

import "time"

// Topic is a named subject area scoping vocabulary and tasks.
type Topic struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}
