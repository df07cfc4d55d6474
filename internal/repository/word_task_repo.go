package repository

import (
	"fmt"
	"strings"

	"linguaquest/internal/database"
	"linguaquest/internal/models"
)

// WordTaskRepository handles the word-task association rows that record
// which words a user has encountered in which tasks
type WordTaskRepository struct {
	db *database.DB
}

// NewWordTaskRepository creates a new word-task association repository
func NewWordTaskRepository(db *database.DB) *WordTaskRepository {
	return &WordTaskRepository{db: db}
}

// Insert associates a word with a task on the given executor. The insert is
// idempotent: re-inserting an existing pair is a no-op. Returns whether a
// new association row was created.
func (r *WordTaskRepository) Insert(q database.DBTX, taskID int64, wordID string) (bool, error) {
	query := q.GetDialect().InsertIgnore("word_in_task",
		[]string{"task_id", "word_id"},
		[]string{"task_id", "word_id"})

	result, err := q.Exec(query, taskID, wordID)
	if err != nil {
		return false, fmt.Errorf("failed to insert word association: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check association result: %w", err)
	}

	return affected == 1, nil
}

// Exists reports whether the word is already associated with the task.
func (r *WordTaskRepository) Exists(taskID int64, wordID string) (bool, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM word_in_task WHERE task_id = ? AND word_id = ?",
		taskID, wordID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check word association: %w", err)
	}
	return count > 0, nil
}

// FindByTask retrieves all word associations for a task.
func (r *WordTaskRepository) FindByTask(taskID int64) ([]models.WordInTask, error) {
	query := `
		SELECT task_id, word_id, completed, score, attempts, added_at
		FROM word_in_task
		WHERE task_id = ?
		ORDER BY added_at
	`
	rows, err := r.db.Query(query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query word associations: %w", err)
	}
	defer rows.Close()

	var associations []models.WordInTask
	for rows.Next() {
		var wit models.WordInTask
		if err := rows.Scan(&wit.TaskID, &wit.WordID, &wit.Completed, &wit.Score, &wit.Attempts, &wit.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan word association: %w", err)
		}
		associations = append(associations, wit)
	}

	return associations, rows.Err()
}

// MarkCompleted records a per-word result on the given executor. Attempts
// accumulate across repeated submissions for the same word. Returns false
// when the word is not associated with the task.
func (r *WordTaskRepository) MarkCompleted(q database.DBTX, taskID int64, wordID string, score int) (bool, error) {
	query := `
		UPDATE word_in_task
		SET completed = ?, score = ?, attempts = attempts + 1
		WHERE task_id = ? AND word_id = ?
	`
	result, err := q.Exec(query, true, score, taskID, wordID)
	if err != nil {
		return false, fmt.Errorf("failed to mark word completed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check completion result: %w", err)
	}

	return affected == 1, nil
}

// FindWordTextsByUserAndTopic retrieves the normalized texts of every word
// the user has ever had associated with any of their tasks for the topic.
// Open and completed tasks both count: once a word has been served it is
// considered seen.
func (r *WordTaskRepository) FindWordTextsByUserAndTopic(userID int64, topic string) ([]string, error) {
	query := `
		SELECT DISTINCT w.text_normalized
		FROM word_in_task wit
		INNER JOIN tasks t ON wit.task_id = t.id
		INNER JOIN words w ON wit.word_id = w.id
		WHERE t.user_id = ? AND LOWER(t.topic) = ?
	`
	rows, err := r.db.Query(query, userID, strings.ToLower(strings.TrimSpace(topic)))
	if err != nil {
		return nil, fmt.Errorf("failed to query learned words: %w", err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan learned word: %w", err)
		}
		texts = append(texts, text)
	}

	return texts, rows.Err()
}
