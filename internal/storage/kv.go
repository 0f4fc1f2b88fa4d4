// Package storage persists small client-side state across restarts.
//
// It is the durable analog of a browser's localStorage: string values under
// fixed keys in a local SQLite file. The session store writes the credential
// through here; everything else only reads.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// KeyCredential is the fixed key the session credential lives under.
const KeyCredential = "auth_token"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// KV is a durable key/value store backed by a local SQLite file. Writes
// replace the whole value atomically; there are no partial updates.
type KV struct {
	db *sql.DB
}

// Open creates or opens the client-state database at dbPath and runs
// migrations.
func Open(dbPath string) (*KV, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping state database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate state database: %w", err)
	}

	return &KV{db: db}, nil
}

// Close releases the underlying database handle.
func (s *KV) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *KV) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM client_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read state key %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *KV) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO client_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("write state key %q: %w", key, err)
	}

	slog.DebugContext(ctx, "Client state written", "key", key)
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *KV) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM client_state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete state key %q: %w", key, err)
	}
	return nil
}
