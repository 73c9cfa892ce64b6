// internal/session/store.go
//
// Swimspot – persisted bearer credential.
//
// Context
//   Exactly one item survives restarts: the bearer token string.  It lives
//   in a single well-known file under the configured state directory, read
//   once at startup by Bootstrap and written or removed by the login,
//   register, and logout paths.  A missing file simply means “anonymous”.
//
//------------------------------------------------------------------------------

package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const tokenFile = "token"

// TokenStore reads and writes the persisted credential.
type TokenStore struct {
	path string
}

// NewTokenStore roots the store at dir, creating the directory if needed.
func NewTokenStore(dir string) (*TokenStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir %s: %w", dir, err)
	}
	return &TokenStore{path: filepath.Join(dir, tokenFile)}, nil
}

// Load returns the stored credential.  ok is false when none is persisted.
func (t *TokenStore) Load() (token string, ok bool, err error) {
	raw, err := os.ReadFile(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read token file: %w", err)
	}
	token = strings.TrimSpace(string(raw))
	return token, token != "", nil
}

// Save persists the credential.  0600: the token is a live secret.
func (t *TokenStore) Save(token string) error {
	if err := os.WriteFile(t.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the persisted credential.  Removing an absent file is fine.
func (t *TokenStore) Clear() error {
	if err := os.Remove(t.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
