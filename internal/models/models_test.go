package models

import (
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
		valid bool
	}{
		{"beginner", LevelBeginner, true},
		{"intermediate", LevelIntermediate, true},
		{"advanced", LevelAdvanced, true},
		{"expert", "", false},
		{"", "", false},
		{"Beginner", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			if ok != tt.valid {
				t.Fatalf("ParseLevel(%q) valid = %v, want %v", tt.input, ok, tt.valid)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFromScale(t *testing.T) {
	tests := []struct {
		n    int
		want Level
	}{
		{1, LevelBeginner},
		{3, LevelBeginner},
		{4, LevelIntermediate},
		{6, LevelIntermediate},
		{7, LevelAdvanced},
		{12, LevelAdvanced},
	}

	for _, tt := range tests {
		if got := LevelFromScale(tt.n); got != tt.want {
			t.Errorf("LevelFromScale(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestTaskCompleted(t *testing.T) {
	task := &Task{ID: 1, UserID: 2, Topic: "Travel"}
	if task.Completed() {
		t.Error("task without completion timestamp should not be completed")
	}

	now := time.Now()
	task.CompletedAt = &now
	if !task.Completed() {
		t.Error("task with completion timestamp should be completed")
	}
}
