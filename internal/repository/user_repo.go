package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"linguaquest/internal/database"
	"linguaquest/internal/models"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user account and returns its generated identity.
func (r *UserRepository) Create(email, name, passwordHash string) (int64, error) {
	id, err := r.db.ExecReturningID(
		"INSERT INTO users (email, name, password_hash) VALUES (?, ?, ?)",
		strings.ToLower(strings.TrimSpace(email)), name, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// FindByEmail retrieves a user by email, case-insensitively. Returns nil
// when no such user exists.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(
		"SELECT id, email, name, password_hash, level, created_at FROM users WHERE email = ?",
		strings.ToLower(strings.TrimSpace(email))).
		Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Level, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// FindByID retrieves a user by identity. Returns nil when no such user
// exists.
func (r *UserRepository) FindByID(userID int64) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(
		"SELECT id, email, name, password_hash, level, created_at FROM users WHERE id = ?",
		userID).
		Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Level, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdateLevel stores the user's self-assessed proficiency level.
func (r *UserRepository) UpdateLevel(userID int64, level models.Level) error {
	_, err := r.db.Exec("UPDATE users SET level = ? WHERE id = ?", string(level), userID)
	if err != nil {
		return fmt.Errorf("failed to update user level: %w", err)
	}
	return nil
}
