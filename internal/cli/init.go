// Package cli provides the shared startup plumbing for cmd/monedero:
// logging, environment, configuration and the client-state database.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"monedero/internal/config"
	"monedero/internal/log"
	"monedero/internal/storage"
)

// SetupLogger initializes structured logging and installs it as the
// process-wide default.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are ignored
// silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting the
// process on failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenStateDB opens the client-state database, exiting the process on
// failure.
func OpenStateDB(logger *log.Logger, dbPath string) *storage.KV {
	kv, err := storage.Open(dbPath)
	if err != nil {
		logger.Error("Failed to open client-state database", log.FieldError, err, "path", dbPath)
		os.Exit(1)
	}
	return kv
}

// NotifyShutdown returns a context cancelled on SIGINT/SIGTERM, plus the
// shutdown grace period to apply once it fires.
func NotifyShutdown(timeout time.Duration) (context.Context, context.CancelFunc, time.Duration) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return ctx, cancel, timeout
}
