package models

import "time"

// TaskType identifies the kind of learning activity. The set is open:
// clients may start ad-hoc activity types beyond the built-in ones.
type TaskType string

const (
	TaskTypeQuiz         TaskType = "quiz"
	TaskTypePost         TaskType = "post"
	TaskTypeConversation TaskType = "conversation"
	TaskTypeFlashcard    TaskType = "flashcard"
)

// Task is one instance of a learning activity owned by a user.
// At most one open (uncompleted) task exists per (user, topic, level, type).
type Task struct {
	ID          int64
	UserID      int64
	Topic       string
	Level       int
	Type        TaskType
	Score       int
	PostID      *int64
	StartedAt   time.Time
	CompletedAt *time.Time
	DurationSec *int
}

// Completed reports whether the task has been finished.
func (t *Task) Completed() bool {
	return t.CompletedAt != nil
}

// WordInTask records that a word was presented within a task.
// (TaskID, WordID) is the primary key; re-adding the same pair is a no-op.
type WordInTask struct {
	TaskID    int64
	WordID    string
	Completed bool
	Score     int
	Attempts  int
	AddedAt   time.Time
}
