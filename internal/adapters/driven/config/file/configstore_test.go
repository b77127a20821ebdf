package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())

	_, err = os.Stat(dir)
	require.NoError(t, err)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("corpus.path", "/data/movies.csv"))
	require.NoError(t, store.Set("recommend.count", int64(15)))
	require.NoError(t, store.Set("recommend.posters", true))

	assert.Equal(t, "/data/movies.csv", store.GetString("corpus.path"))
	assert.Equal(t, 15, store.GetInt("recommend.count"))
	assert.True(t, store.GetBool("recommend.posters"))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.False(t, store.GetBool("missing"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", "a string"))
	assert.Equal(t, 0, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("tmdb.api_key", "secret-key"))
	require.NoError(t, first.Set("recommend.count", int64(5)))

	second, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", second.GetString("tmdb.api_key"))
	assert.Equal(t, 5, second.GetInt("recommend.count"))
}

func TestConfigStore_DotNotationRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("tmdb.api_key", "k"))
	require.NoError(t, store.Set("tmdb.image_base", "https://image.tmdb.org/t/p/w342"))

	// The file uses TOML tables; a reload flattens back to dotted keys.
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[tmdb]")

	require.NoError(t, store.Load())
	assert.Equal(t, "k", store.GetString("tmdb.api_key"))
}

func TestConfigStore_RestrictedPermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("tmdb.api_key", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
