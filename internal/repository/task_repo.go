package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"linguaquest/internal/database"
	"linguaquest/internal/models"
)

// TaskRepository handles database operations for learning tasks
type TaskRepository struct {
	db *database.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *database.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = "id, user_id, topic, level, type, score, post_id, started_at, completed_at, duration_sec"

// FindOpenTask retrieves the user's open (not yet completed) task matching
// topic, level and type, or nil when none exists. Topic matching is
// case-insensitive.
func (r *TaskRepository) FindOpenTask(userID int64, topic string, level int, taskType models.TaskType) (*models.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = ? AND LOWER(topic) = ? AND level = ? AND type = ?
		  AND completed_at IS NULL
		ORDER BY started_at DESC
		LIMIT 1
	`
	row := r.db.QueryRow(query, userID, strings.ToLower(strings.TrimSpace(topic)), level, string(taskType))

	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get open task: %w", err)
	}

	return task, nil
}

// Create persists a new task on the given executor and returns its
// generated identity.
func (r *TaskRepository) Create(q database.DBTX, task *models.Task) (int64, error) {
	query := `
		INSERT INTO tasks (user_id, topic, level, type, post_id)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := q.ExecReturningID(query, task.UserID, task.Topic, task.Level, string(task.Type), task.PostID)
	if err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}

	return id, nil
}

// FindByID retrieves a task by identity on the given executor, so callers
// can read through an open transaction. Returns nil when no task exists.
func (r *TaskRepository) FindByID(q database.DBTX, taskID int64) (*models.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = ?
	`
	task, err := scanTask(q.QueryRow(query, taskID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// Complete marks a task as finished with its final score. The guard on
// completed_at makes concurrent completion attempts race-safe: exactly one
// caller observes an affected row. Returns false when the task was already
// completed (or does not exist).
func (r *TaskRepository) Complete(q database.DBTX, taskID int64, score int, completedAt time.Time, durationSec *int) (bool, error) {
	query := `
		UPDATE tasks
		SET score = ?, completed_at = ?, duration_sec = ?
		WHERE id = ? AND completed_at IS NULL
	`
	result, err := q.Exec(query, score, completedAt, durationSec, taskID)
	if err != nil {
		return false, fmt.Errorf("failed to complete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check completion result: %w", err)
	}

	return affected == 1, nil
}

// ListByUser retrieves a user's tasks, most recent first.
func (r *TaskRepository) ListByUser(userID int64, limit int) ([]models.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = ?
		ORDER BY started_at DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

func scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{}
	var taskType string
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Topic,
		&task.Level,
		&taskType,
		&task.Score,
		&task.PostID,
		&task.StartedAt,
		&task.CompletedAt,
		&task.DurationSec,
	)
	if err != nil {
		return nil, err
	}
	task.Type = models.TaskType(taskType)
	return task, nil
}
