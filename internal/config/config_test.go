package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_TYPE", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RequiresDBURLForMySQL(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_TYPE", "mysql")
	t.Setenv("DB_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_TYPE", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5*time.Second, cfg.GeneratorTimeout)
	assert.Equal(t, 10*time.Minute, cfg.TopicCacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_TYPE", "mysql")
	t.Setenv("DB_URL", "user:pass@tcp(localhost:3306)/linguaquest?parseTime=true")
	t.Setenv("APP_ENV", "production")
	t.Setenv("GENERATOR_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 10*time.Second, cfg.GeneratorTimeout)
	assert.Equal(t, "mysql", cfg.DatabaseType)
}
