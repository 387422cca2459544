package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"skidmo-client/internal/core/domain"
)

// FileStore keeps the session cached in memory after the first read and
// mirrors every change to a JSON file, the client-side stand-in for the
// device's persistent storage.
type FileStore struct {
	path string

	mu     sync.RWMutex
	loaded bool
	cached domain.Session
}

func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path cannot be empty")
	}
	return &FileStore{path: path}, nil
}

type storedSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id,omitempty"`
	Email        string `json:"email,omitempty"`
	IsVerified   bool   `json:"is_verified,omitempty"`
}

// Current returns the cached session, reading the backing file once on first
// use. A missing or unreadable file just means "not logged in".
func (s *FileStore) Current() domain.Session {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.cached
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.cached
	}
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		return s.cached
	}
	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return s.cached
	}
	s.cached = domain.Session{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		Claims: domain.SessionClaims{
			UserID:     stored.UserID,
			Email:      stored.Email,
			IsVerified: stored.IsVerified,
		},
	}
	return s.cached
}

// Save updates the cache and rewrites the backing file.
func (s *FileStore) Save(sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := storedSession{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		UserID:       sess.Claims.UserID,
		Email:        sess.Claims.Email,
		IsVerified:   sess.Claims.IsVerified,
	}
	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("FileStore: failed to marshal session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("FileStore: failed to create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("FileStore: failed to write session file: %w", err)
	}

	s.cached = sess
	s.loaded = true
	return nil
}

// Clear drops the cached session and removes the backing file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = domain.Session{}
	s.loaded = true
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("FileStore: failed to remove session file: %w", err)
	}
	return nil
}
