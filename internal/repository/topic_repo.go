package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"linguaquest/internal/database"
	"linguaquest/internal/models"
)

// TopicRepository handles database operations for learning topics
type TopicRepository struct {
	db *database.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *database.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// List retrieves all topics ordered by name.
func (r *TopicRepository) List() ([]models.Topic, error) {
	rows, err := r.db.Query("SELECT id, name, description, created_at FROM topics ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	var topics []models.Topic
	for rows.Next() {
		var topic models.Topic
		if err := rows.Scan(&topic.ID, &topic.Name, &topic.Description, &topic.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, topic)
	}

	return topics, rows.Err()
}

// FindByName retrieves a topic by name, case-insensitively. Returns nil
// when no such topic exists.
func (r *TopicRepository) FindByName(name string) (*models.Topic, error) {
	var topic models.Topic
	err := r.db.QueryRow(
		"SELECT id, name, description, created_at FROM topics WHERE LOWER(name) = ?",
		strings.ToLower(strings.TrimSpace(name))).
		Scan(&topic.ID, &topic.Name, &topic.Description, &topic.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	return &topic, nil
}

// Create persists a new topic and returns its generated identity.
func (r *TopicRepository) Create(name, description string) (int64, error) {
	id, err := r.db.ExecReturningID(
		"INSERT INTO topics (name, description) VALUES (?, ?)",
		name, description)
	if err != nil {
		return 0, fmt.Errorf("failed to create topic: %w", err)
	}
	return id, nil
}
