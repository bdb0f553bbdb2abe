package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, "scamguard", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, 15*time.Second, cfg.AI.Timeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SCAMGUARD_SERVER_HTTP_PORT", "9090")
	t.Setenv("SCAMGUARD_APP_ENVIRONMENT", "production")
	t.Setenv("SCAMGUARD_AI_ENABLED", "true")
	t.Setenv("SCAMGUARD_AI_PROVIDER", "openai")

	cfg, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "openai", cfg.AI.Provider)
}
