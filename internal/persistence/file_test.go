package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := store.Get("token")
	assert.False(t, ok)

	require.NoError(t, store.Set("token", "abc"))
	require.NoError(t, store.Set("username", "ada"))

	val, ok := store.Get("token")
	require.True(t, ok)
	assert.Equal(t, "abc", val)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("token", "abc"))
	require.NoError(t, store.Set("username", "ada"))
	require.NoError(t, store.Delete("token"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := reopened.Get("token")
	assert.False(t, ok)
	name, ok := reopened.Get("username")
	require.True(t, ok)
	assert.Equal(t, "ada", name)
}

func TestFileStoreCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("token", "abc"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := store.Get("token")
	assert.False(t, ok)

	require.NoError(t, store.Set("token", "fresh"))
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	val, ok := reopened.Get("token")
	require.True(t, ok)
	assert.Equal(t, "fresh", val)
}

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	assert.NoError(t, store.Delete("nope"))
}
