package database

import (
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "sqlite3" {
			t.Errorf("DriverName() = %v, want sqlite3", got)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for SQLite")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "sqlite" {
			t.Errorf("MigrationsSubdir() = %v, want sqlite", got)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "postgres" {
			t.Errorf("DriverName() = %v, want postgres", got)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return false for PostgreSQL")
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "mysql" {
			t.Errorf("DriverName() = %v, want mysql", got)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for MySQL")
		}
	})

	t.Run("DSN appends driver params", func(t *testing.T) {
		got := dialect.DSN(DialectConfig{URL: "user:pass@tcp(localhost:3306)/linguaquest"})
		want := "user:pass@tcp(localhost:3306)/linguaquest?parseTime=true&multiStatements=true"
		if got != want {
			t.Errorf("DSN() = %v, want %v", got, want)
		}
	})

	t.Run("DSN preserves existing params", func(t *testing.T) {
		url := "user:pass@tcp(localhost:3306)/linguaquest?parseTime=false&multiStatements=true"
		if got := dialect.DSN(DialectConfig{URL: url}); got != url {
			t.Errorf("DSN() = %v, want %v", got, url)
		}
	})
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT * FROM words WHERE topic = ?",
			expected: "SELECT * FROM words WHERE topic = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT * FROM words WHERE topic = ?",
			expected: "SELECT * FROM words WHERE topic = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO tasks (user_id, topic) VALUES (?, ?)",
			expected: "INSERT INTO tasks (user_id, topic) VALUES ($1, $2)",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "UPDATE tasks SET score = ?, completed_at = ? WHERE id = ?",
			expected: "UPDATE tasks SET score = ?, completed_at = ? WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(tt.query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestInsertIgnore(t *testing.T) {
	columns := []string{"task_id", "word_id", "score", "attempts"}
	conflict := []string{"task_id", "word_id"}

	tests := []struct {
		name     string
		dialect  Dialect
		expected string
	}{
		{
			name:     "MySQL",
			dialect:  NewMySQLDialect(),
			expected: "INSERT IGNORE INTO word_in_task (task_id, word_id, score, attempts) VALUES (?, ?, ?, ?)",
		},
		{
			name:     "SQLite",
			dialect:  NewSQLiteDialect(),
			expected: "INSERT OR IGNORE INTO word_in_task (task_id, word_id, score, attempts) VALUES (?, ?, ?, ?)",
		},
		{
			name:     "PostgreSQL",
			dialect:  NewPostgresDialect(),
			expected: "INSERT INTO word_in_task (task_id, word_id, score, attempts) VALUES (?, ?, ?, ?) ON CONFLICT (task_id, word_id) DO NOTHING",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.InsertIgnore("word_in_task", columns, conflict)
			if result != tt.expected {
				t.Errorf("InsertIgnore() = %v, want %v", result, tt.expected)
			}
		})
	}
}
