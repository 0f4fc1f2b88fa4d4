package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Local HTTP server
	Port string

	// Remote finance API
	APIBaseURL     string
	RequestTimeout time.Duration

	// Client-state database (credential and small preferences)
	StateDBPath string

	// Bootstrap
	BootstrapTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8081"),
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:8000"),
		RequestTimeout:   getEnvDuration("API_REQUEST_TIMEOUT", 15*time.Second),
		StateDBPath:      getEnv("STATE_DB_PATH", "./data/monedero.db"),
		BootstrapTimeout: getEnvDuration("BOOTSTRAP_TIMEOUT", 10*time.Second),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if parsed, err := url.Parse(c.APIBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API base URL scheme '%s': must be 'http' or 'https'", parsed.Scheme))
	} else if parsed.Host == "" {
		errors = append(errors, fmt.Sprintf("invalid API base URL '%s': missing host", c.APIBaseURL))
	}

	if c.StateDBPath == "" {
		errors = append(errors, "state database path cannot be empty")
	} else {
		dir := filepath.Dir(c.StateDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create state database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.RequestTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid request timeout %v: must be at least 1 second", c.RequestTimeout))
	} else if c.RequestTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid request timeout %v: must be at most 5 minutes", c.RequestTimeout))
	}

	if c.BootstrapTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid bootstrap timeout %v: must be at least 1 second", c.BootstrapTimeout))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
