package models

import "time"

// Level is a proficiency level attached to users and catalog words.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ParseLevel converts a string to a Level, reporting whether it is valid.
func ParseLevel(s string) (Level, bool) {
	switch Level(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return Level(s), true
	}
	return "", false
}

// LevelFromScale maps a numeric task level (1-9) to a proficiency band.
// Levels 1-3 are beginner, 4-6 intermediate, 7+ advanced.
func LevelFromScale(n int) Level {
	switch {
	case n <= 3:
		return LevelBeginner
	case n <= 6:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}

// Word represents a vocabulary catalog entry shared across users.
// Identity is an opaque UUID; (normalized text, topic) is the natural
// dedup key enforced by the schema.
type Word struct {
	ID           string
	Text         string
	Translation  string
	Example      string
	Topic        string
	Level        Level
	PartOfSpeech string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
