package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")

	cfg := Load()
	assert.Equal(t, "127.0.0.1:7878", cfg.ServerAddress)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, 16, cfg.MaxOpenConns)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("DATABASE_URL", "user:pass@tcp(db:3306)/orchestrator?parseTime=true")
	t.Setenv("DB_MAX_OPEN_CONNS", "32")

	cfg := Load()
	assert.Equal(t, "0.0.0.0:9000", cfg.ServerAddress)
	assert.Equal(t, "user:pass@tcp(db:3306)/orchestrator?parseTime=true", cfg.DatabaseURL)
	assert.Equal(t, 32, cfg.MaxOpenConns)
}

func TestLoadRejectsBadPoolSize(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	assert.Equal(t, 16, Load().MaxOpenConns)

	t.Setenv("DB_MAX_OPEN_CONNS", "-4")
	assert.Equal(t, 16, Load().MaxOpenConns)
}
