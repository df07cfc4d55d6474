package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort  string
	Environment string // "development" or "production"

	DatabaseType   string // "mysql" (default), "postgres", "sqlite"
	DatabaseURL    string
	DatabasePath   string
	MigrationsPath string

	JWTSecret string
	TokenTTL  time.Duration

	GeneratorAPIKey  string
	GeneratorBaseURL string
	GeneratorModel   string
	GeneratorTimeout time.Duration

	TopicCacheTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:  getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),

		DatabaseType:   getEnv("DB_TYPE", "mysql"),
		DatabaseURL:    os.Getenv("DB_URL"),
		DatabasePath:   getEnv("DB_PATH", "./linguaquest.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  getDuration("TOKEN_TTL", 24*time.Hour),

		GeneratorAPIKey:  os.Getenv("GENERATOR_API_KEY"),
		GeneratorBaseURL: getEnv("GENERATOR_BASE_URL", "https://api.openai.com/v1/chat/completions"),
		GeneratorModel:   getEnv("GENERATOR_MODEL", "gpt-4o-mini"),
		GeneratorTimeout: getDuration("GENERATOR_TIMEOUT", 5*time.Second),

		TopicCacheTTL: getDuration("TOPIC_CACHE_TTL", 10*time.Minute),
	}

	// Validate required fields
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "sqlite3" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DB_URL is required for database type %s", cfg.DatabaseType)
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in development mode.
// Development mode switches logging to the human-readable console format.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration reads a duration environment variable or returns a default
func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
