package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				Port:             "8081",
				APIBaseURL:       "http://localhost:8000",
				RequestTimeout:   15 * time.Second,
				StateDBPath:      filepath.Join(tmpDir, "state.db"),
				BootstrapTimeout: 10 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:             "abc",
				APIBaseURL:       "http://localhost:8000",
				RequestTimeout:   15 * time.Second,
				StateDBPath:      filepath.Join(tmpDir, "state.db"),
				BootstrapTimeout: 10 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:             "70000",
				APIBaseURL:       "http://localhost:8000",
				RequestTimeout:   15 * time.Second,
				StateDBPath:      filepath.Join(tmpDir, "state.db"),
				BootstrapTimeout: 10 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "invalid API base URL scheme",
			config: Config{
				Port:             "8081",
				APIBaseURL:       "ftp://localhost:8000",
				RequestTimeout:   15 * time.Second,
				StateDBPath:      filepath.Join(tmpDir, "state.db"),
				BootstrapTimeout: 10 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid API base URL scheme 'ftp': must be 'http' or 'https'",
		},
		{
			name: "API base URL without host",
			config: Config{
				Port:             "8081",
				APIBaseURL:       "http://",
				RequestTimeout:   15 * time.Second,
				StateDBPath:      filepath.Join(tmpDir, "state.db"),
				BootstrapTimeout: 10 * time.Second,
			},
			wantErr:     true,
			errorString: "missing host",
		},
		{
			name: "empty state database path",
			config: Config{
				Port:             "8081",
				APIBaseURL:       "http://localhost:8000",
				RequestTimeout:   15 * time.Second,
				StateDBPath:      "",
				BootstrapTimeout: 10 * time.Second,
			},
			wantErr:     true,
			errorString: "state database path cannot be empty",
		},
		{
			name: "request timeout too short",
			config: Config{
				Port:             "8081",
				APIBaseURL:       "http://localhost:8000",
				RequestTimeout:   500 * time.Millisecond,
				StateDBPath:      filepath.Join(tmpDir, "state.db"),
				BootstrapTimeout: 10 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid request timeout 500ms: must be at least 1 second",
		},
		{
			name: "request timeout too long",
			config: Config{
				Port:             "8081",
				APIBaseURL:       "http://localhost:8000",
				RequestTimeout:   10 * time.Minute,
				StateDBPath:      filepath.Join(tmpDir, "state.db"),
				BootstrapTimeout: 10 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid request timeout 10m0s: must be at most 5 minutes",
		},
		{
			name: "bootstrap timeout too short",
			config: Config{
				Port:             "8081",
				APIBaseURL:       "http://localhost:8000",
				RequestTimeout:   15 * time.Second,
				StateDBPath:      filepath.Join(tmpDir, "state.db"),
				BootstrapTimeout: 100 * time.Millisecond,
			},
			wantErr:     true,
			errorString: "invalid bootstrap timeout 100ms: must be at least 1 second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	originalVars := map[string]string{
		"PORT":                os.Getenv("PORT"),
		"API_BASE_URL":        os.Getenv("API_BASE_URL"),
		"API_REQUEST_TIMEOUT": os.Getenv("API_REQUEST_TIMEOUT"),
		"STATE_DB_PATH":       os.Getenv("STATE_DB_PATH"),
		"BOOTSTRAP_TIMEOUT":   os.Getenv("BOOTSTRAP_TIMEOUT"),
	}

	for key := range originalVars {
		os.Unsetenv(key)
	}

	defer func() {
		for key, value := range originalVars {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.Port != "8081" {
			t.Errorf("Load() Port = %v, want 8081", cfg.Port)
		}
		if cfg.APIBaseURL != "http://localhost:8000" {
			t.Errorf("Load() APIBaseURL = %v, want http://localhost:8000", cfg.APIBaseURL)
		}
		if cfg.RequestTimeout != 15*time.Second {
			t.Errorf("Load() RequestTimeout = %v, want 15s", cfg.RequestTimeout)
		}
		if cfg.StateDBPath != "./data/monedero.db" {
			t.Errorf("Load() StateDBPath = %v, want ./data/monedero.db", cfg.StateDBPath)
		}
		if cfg.BootstrapTimeout != 10*time.Second {
			t.Errorf("Load() BootstrapTimeout = %v, want 10s", cfg.BootstrapTimeout)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		os.Setenv("PORT", "9090")
		os.Setenv("API_BASE_URL", "https://finanzas.example.com")
		os.Setenv("API_REQUEST_TIMEOUT", "45s")
		os.Setenv("STATE_DB_PATH", "/tmp/monedero-test.db")
		os.Setenv("BOOTSTRAP_TIMEOUT", "5s")

		cfg := Load()

		if cfg.Port != "9090" {
			t.Errorf("Load() Port = %v, want 9090", cfg.Port)
		}
		if cfg.APIBaseURL != "https://finanzas.example.com" {
			t.Errorf("Load() APIBaseURL = %v, want https://finanzas.example.com", cfg.APIBaseURL)
		}
		if cfg.RequestTimeout != 45*time.Second {
			t.Errorf("Load() RequestTimeout = %v, want 45s", cfg.RequestTimeout)
		}
		if cfg.StateDBPath != "/tmp/monedero-test.db" {
			t.Errorf("Load() StateDBPath = %v, want /tmp/monedero-test.db", cfg.StateDBPath)
		}
		if cfg.BootstrapTimeout != 5*time.Second {
			t.Errorf("Load() BootstrapTimeout = %v, want 5s", cfg.BootstrapTimeout)
		}
	})

	t.Run("invalid duration falls back to default", func(t *testing.T) {
		os.Setenv("API_REQUEST_TIMEOUT", "not-a-duration")

		cfg := Load()
		if cfg.RequestTimeout != 15*time.Second {
			t.Errorf("Load() RequestTimeout = %v, want default 15s", cfg.RequestTimeout)
		}
	})
}
