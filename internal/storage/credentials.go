package storage

import (
	"context"
	"errors"
)

// CredentialStore exposes the fixed credential slot of the client-state
// database. The session store is its only writer.
type CredentialStore struct {
	kv *KV
}

// Credentials returns the credential slot of this database.
func (s *KV) Credentials() *CredentialStore {
	return &CredentialStore{kv: s}
}

// Load returns the persisted credential, or "" when none is stored.
func (c *CredentialStore) Load(ctx context.Context) (string, error) {
	token, err := c.kv.Get(ctx, KeyCredential)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Save persists the credential, replacing any previous value.
func (c *CredentialStore) Save(ctx context.Context, token string) error {
	return c.kv.Set(ctx, KeyCredential, token)
}

// Clear discards the persisted credential. Clearing an empty slot is a no-op.
func (c *CredentialStore) Clear(ctx context.Context) error {
	return c.kv.Delete(ctx, KeyCredential)
}
