package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"linguaquest/internal/database"
	"linguaquest/internal/models"
)

// WordRepository handles database operations for the shared word catalog
type WordRepository struct {
	db *database.DB
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *database.DB) *WordRepository {
	return &WordRepository{db: db}
}

const wordColumns = "id, text, translation, example, topic, level, part_of_speech, created_at, updated_at"

// FindByTopicAndLevel retrieves catalog words for a topic and proficiency
// level, excluding the given normalized word texts. Topic matching is
// case-insensitive; the exclusion list must already be normalized.
func (r *WordRepository) FindByTopicAndLevel(topic string, level models.Level, excludeTexts []string) ([]models.Word, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE LOWER(topic) = ? AND level = ?
	`
	args := []interface{}{strings.ToLower(strings.TrimSpace(topic)), string(level)}

	if len(excludeTexts) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(excludeTexts)), ", ")
		query += " AND text_normalized NOT IN (" + placeholders + ")"
		for _, text := range excludeTexts {
			args = append(args, text)
		}
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, *word)
	}

	return words, rows.Err()
}

// FindByText retrieves a word by its natural key (normalized text, topic).
// Returns nil when no such word exists.
func (r *WordRepository) FindByText(topic, normalizedText string) (*models.Word, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE LOWER(topic) = ? AND text_normalized = ?
	`
	row := r.db.QueryRow(query, strings.ToLower(strings.TrimSpace(topic)), normalizedText)

	word, err := scanWord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}

	return word, nil
}

// Insert persists a new catalog word and returns its identity. The caller
// assigns the UUID; text_normalized carries the dedup key.
func (r *WordRepository) Insert(word *models.Word) (string, error) {
	query := `
		INSERT INTO words (id, text, text_normalized, translation, example, topic, level, part_of_speech)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		word.ID,
		word.Text,
		strings.ToLower(strings.TrimSpace(word.Text)),
		word.Translation,
		word.Example,
		word.Topic,
		string(word.Level),
		word.PartOfSpeech,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert word: %w", err)
	}

	return word.ID, nil
}

// FindByIDs retrieves catalog words by identity. Missing IDs are silently
// absent from the result; the caller decides whether that matters.
func (r *WordRepository) FindByIDs(ids []string) ([]models.Word, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	query := "SELECT " + wordColumns + " FROM words WHERE id IN (" + placeholders + ")"
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, *word)
	}

	return words, rows.Err()
}

// UpdateTranslation updates a word's translation and example sentence.
// Those are the only mutable fields; text and topic are part of the
// natural key and never change.
func (r *WordRepository) UpdateTranslation(wordID, translation, example string) error {
	query := "UPDATE words SET translation = ?, example = ?, updated_at = ? WHERE id = ?"
	_, err := r.db.Exec(query, translation, example, time.Now().UTC(), wordID)
	if err != nil {
		return fmt.Errorf("failed to update word: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWord(row rowScanner) (*models.Word, error) {
	word := &models.Word{}
	var level string
	err := row.Scan(
		&word.ID,
		&word.Text,
		&word.Translation,
		&word.Example,
		&word.Topic,
		&level,
		&word.PartOfSpeech,
		&word.CreatedAt,
		&word.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	word.Level = models.Level(level)
	return word, nil
}
