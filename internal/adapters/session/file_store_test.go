package session

import (
	"os"
	"path/filepath"
	"testing"

	"skidmo-client/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Session{}, store.Current())

	saved := domain.Session{
		AccessToken:  "tok-1",
		RefreshToken: "ref-1",
		Claims: domain.SessionClaims{
			UserID:     "user-1",
			Email:      "demo@skidmo.test",
			IsVerified: true,
		},
	}
	require.NoError(t, store.Save(saved))
	assert.Equal(t, saved, store.Current())

	// A fresh store reads the same session back from disk.
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, saved, reopened.Current())
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(domain.Session{AccessToken: "tok"}))
	require.NoError(t, store.Clear())
	assert.Equal(t, domain.Session{}, store.Current())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Session{}, reopened.Current())
}

func TestFileStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(domain.Session{AccessToken: "tok"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
