// Package session owns the credential lifecycle. The store is the single
// writer of the persisted token: login sets it, logout and any 401 clear it,
// nothing else touches it.
package session

import (
	"os"
	"strings"
)

type Store interface {
	Token() string
	Set(token string) error
	Clear() error
}

// FileStore keeps the token in a single file, the desktop counterpart of the
// browser's localStorage entry.
type FileStore struct {
	Path string
}

func (s *FileStore) Token() string {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func (s *FileStore) Set(token string) error {
	return os.WriteFile(s.Path, []byte(token), 0600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemStore is an in-process store for tests.
type MemStore struct {
	token string
}

func (s *MemStore) Token() string { return s.token }

func (s *MemStore) Set(token string) error { s.token = token; return nil }

func (s *MemStore) Clear() error { s.token = ""; return nil }

// Guard gates the authenticated area. It holds no state of its own: each
// Check reads the store and, when no credential is present, sends the user
// back to the login entry point. Token validity is not checked here; the
// backend's 401 handles expiry lazily.
type Guard struct {
	store   Store
	toLogin func()
}

func NewGuard(store Store, toLogin func()) *Guard {
	return &Guard{store: store, toLogin: toLogin}
}

func (g *Guard) Check() bool {
	if g.store.Token() == "" {
		if g.toLogin != nil {
			g.toLogin()
		}
		return false
	}
	return true
}
