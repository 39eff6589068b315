package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:8080", cfg.EngineURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.BadgePollInterval)
	assert.Equal(t, 30*time.Second, cfg.DuplicateWindow)
	assert.Equal(t, 10*time.Second, cfg.WatchdogTimeout)
	assert.False(t, cfg.Debug)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ENGINE_URL", "http://engine.test:9000")
	t.Setenv("DUPLICATE_WINDOW", "45s")
	t.Setenv("WATCHDOG_TIMEOUT", "20")
	t.Setenv("SESSION_TOKEN", "header.claims.sig")
	t.Setenv("DEBUG", "true")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "http://engine.test:9000", cfg.EngineURL)
	assert.Equal(t, 45*time.Second, cfg.DuplicateWindow)
	// Plain numbers are read as seconds
	assert.Equal(t, 20*time.Second, cfg.WatchdogTimeout)
	assert.Equal(t, "header.claims.sig", cfg.SessionToken)
	assert.True(t, cfg.Debug)
}

func TestLoadConfigBadDurationFallsBack(t *testing.T) {
	t.Setenv("BADGE_POLL_INTERVAL", "not-a-duration")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.BadgePollInterval)
}
