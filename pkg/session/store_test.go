package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loopctl", "token")
	store, err := NewFileTokenStore(path)
	require.NoError(t, err)

	// Absent token reads as empty, not as an error.
	tok, err := store.Get()
	require.NoError(t, err)
	require.Empty(t, tok)

	require.NoError(t, store.Set("tok-123"))
	tok, err = store.Get()
	require.NoError(t, err)
	require.Equal(t, "tok-123", tok)

	// Visible to a second store over the same path (the reload case).
	reopened, err := NewFileTokenStore(path)
	require.NoError(t, err)
	tok, err = reopened.Get()
	require.NoError(t, err)
	require.Equal(t, "tok-123", tok)

	// Set overwrites.
	require.NoError(t, store.Set("tok-456"))
	tok, _ = store.Get()
	require.Equal(t, "tok-456", tok)
}

func TestFileTokenStore_ClearIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store, err := NewFileTokenStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set("tok"))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing an absent token is not an error")

	tok, err := store.Get()
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestFileTokenStore_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store, err := NewFileTokenStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileTokenStore_RequiresPath(t *testing.T) {
	_, err := NewFileTokenStore("  ")
	require.Error(t, err)
}

func TestMemTokenStore(t *testing.T) {
	store := NewMemTokenStore()
	tok, err := store.Get()
	require.NoError(t, err)
	require.Empty(t, tok)

	require.NoError(t, store.Set("t"))
	tok, _ = store.Get()
	require.Equal(t, "t", tok)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	tok, _ = store.Get()
	require.Empty(t, tok)
}
