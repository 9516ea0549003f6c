package desk

import (
	"os"
	"strconv"
	"time"
)

// Config holds desk-controller client settings, read from environment
// variables. Polling is disabled when no base URL is configured.
type Config struct {
	Enabled bool
	BaseURL string
	Timeout time.Duration
	Retries int
}

// LoadConfig reads DESKCOACH_DESK_URL and friends from the environment.
func LoadConfig() Config {
	cfg := Config{
		Timeout: 5 * time.Second,
		Retries: 2,
	}

	cfg.BaseURL = os.Getenv("DESKCOACH_DESK_URL")
	cfg.Enabled = cfg.BaseURL != ""

	if v := os.Getenv("DESKCOACH_DESK_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("DESKCOACH_DESK_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Retries = n
		}
	}

	return cfg
}
