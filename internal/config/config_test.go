package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "30")

	cfg := Load()
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoadPortShorthand(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg := Load()
	require.Equal(t, ":3000", cfg.HTTPAddr)
}

func TestLoadIgnoresMalformedDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-number")

	cfg := Load()
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}
