package backend

import (
	"fmt"
	"os"
	"time"
)

// Config holds backend connection configuration.
type Config struct {
	// BaseURL is the root of the quiz API, e.g. "https://api.lingo.app".
	BaseURL string

	// Token is the session token obtained at login. Empty until then.
	Token string

	// Timeout bounds a single request. Default: 15s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("LINGO_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("LINGO_API_TOKEN"); t != "" {
		cfg.Token = t
	}
	if d := os.Getenv("LINGO_API_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// Validate checks that the config can reach a backend.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("LINGO_API_URL is required")
	}
	return nil
}
