package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://127.0.0.1:5000/api", cfg.BackendURL)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.NotEmpty(t, cfg.SessionFile)
	assert.NotEmpty(t, cfg.SessionSecret)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("BACKEND_URL", "http://backend:5000/api")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "5")
	t.Setenv("SESSION_FILE", "/tmp/session.token")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "http://backend:5000/api", cfg.BackendURL)
	assert.Equal(t, 5*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "/tmp/session.token", cfg.SessionFile)
}

func TestLoadConfigInvalidTimeout(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}
