// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete client configuration
type Config struct {
	// Base URL of the forum engine API
	EngineURL string

	// Timeout applied to every remote request and actor ask
	RequestTimeout time.Duration

	// Interval between notification badge polls
	BadgePollInterval time.Duration

	// Window during which resubmitting identical content is rejected
	DuplicateWindow time.Duration

	// Watchdog that force-releases a stuck in-flight submission
	WatchdogTimeout time.Duration

	// File where the last active page is persisted between runs
	StateFile string

	// Bearer token installed into the API session at startup, for
	// running the console against an engine login obtained elsewhere
	SessionToken string

	Debug bool
}

// DefaultConfig provides the client defaults. The duplicate window,
// watchdog and poll interval match the behavior the web client shipped
// with.
func DefaultConfig() *Config {
	return &Config{
		EngineURL:         "http://localhost:8080",
		RequestTimeout:    5 * time.Second,
		BadgePollInterval: 30 * time.Second,
		DuplicateWindow:   30 * time.Second,
		WatchdogTimeout:   10 * time.Second,
		StateFile:         ".swamp-console-state",
		Debug:             false,
	}
}

// LoadConfig loads configuration from environment variables and applies
// defaults
func LoadConfig() (*Config, error) {
	// Try to load .env from the usual locations
	envLocations := []string{
		".env",       // Current directory
		"../../.env", // Project root when running from cmd/console
	}

	envLoaded := false
	for _, location := range envLocations {
		if err := godotenv.Load(location); err == nil {
			envLoaded = true
			break
		}
	}

	if !envLoaded {
		// Silent failure if no .env exists, which is fine
		_ = godotenv.Load()
	}

	cfg := DefaultConfig()

	if url := os.Getenv("ENGINE_URL"); url != "" {
		cfg.EngineURL = url
	}

	cfg.RequestTimeout = durationFromEnv("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.BadgePollInterval = durationFromEnv("BADGE_POLL_INTERVAL", cfg.BadgePollInterval)
	cfg.DuplicateWindow = durationFromEnv("DUPLICATE_WINDOW", cfg.DuplicateWindow)
	cfg.WatchdogTimeout = durationFromEnv("WATCHDOG_TIMEOUT", cfg.WatchdogTimeout)

	if stateFile := os.Getenv("STATE_FILE"); stateFile != "" {
		cfg.StateFile = stateFile
	}

	if token := os.Getenv("SESSION_TOKEN"); token != "" {
		cfg.SessionToken = token
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, nil
}

// durationFromEnv reads a duration either as a Go duration string
// ("45s") or as a plain number of seconds, falling back on parse errors.
func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
