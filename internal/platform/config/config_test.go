package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cheneysan/link-shortener/internal/platform/config"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("HTTP_ADDR", "8080")
	t.Setenv("DATABASE_URL", "postgres://x:y@localhost:5432/db?sslmode=disable")
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	require.ErrorIs(t, err, config.ErrDatabaseURLEmpty)
}

func TestLoad_DefaultsOk(t *testing.T) {
	setRequired(t)
	t.Setenv("SENTRY_DSN", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Empty(t, cfg.SentryDSN)
	require.Equal(t, 300*time.Millisecond, cfg.StoreOpTimeout)
	require.Equal(t, time.Minute, cfg.APIKeyCacheTTL)
}

func TestLoad_InvalidDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	_, err := config.Load()
	require.ErrorIs(t, err, config.ErrInvalidDuration)
}

func TestLoad_StoreOpTimeoutZero(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_OP_TIMEOUT", "0s")

	_, err := config.Load()
	require.ErrorIs(t, err, config.ErrInvalidDuration)
}

func TestLoad_DBPoolIdleAboveOpen(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_MAX_OPEN_CONNS", "5")
	t.Setenv("DB_MAX_IDLE_CONNS", "10")

	_, err := config.Load()
	require.ErrorIs(t, err, config.ErrInvalidDBPool)
}

func TestLoad_CORSOrigins(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}
