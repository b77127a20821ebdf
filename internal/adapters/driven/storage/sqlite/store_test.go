package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testMovies() []domain.Movie {
	return []domain.Movie{
		{ID: 1, Title: "Alien", Genres: "sci-fi horror", Keywords: "alien ship", Overview: "a crew battles a creature"},
		{ID: 2, Title: "Aliens", Genres: "sci-fi action", Keywords: "colonial marines", Overview: "marines fight aliens"},
		{ID: 3, Title: "Romance", Genres: "drama romance", Keywords: "wedding", Overview: "two people fall in love"},
	}
}

func TestStore_SaveAndLoadSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, "fp-1", testMovies()))

	movies, ok, err := store.LoadSnapshot(ctx, "fp-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, movies, 3)

	// Corpus order round-trips exactly.
	assert.Equal(t, testMovies(), movies)
}

func TestStore_LoadSnapshot_UnknownFingerprint(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, "fp-1", testMovies()))

	_, ok, err := store.LoadSnapshot(ctx, "fp-other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SaveSnapshot_ReplacesPrevious(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, "fp-1", testMovies()))
	require.NoError(t, store.SaveSnapshot(ctx, "fp-2", testMovies()[:1]))

	// The old snapshot is gone.
	_, ok, err := store.LoadSnapshot(ctx, "fp-1")
	require.NoError(t, err)
	assert.False(t, ok)

	movies, ok, err := store.LoadSnapshot(ctx, "fp-2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, movies, 1)
}

func TestStore_SaveSnapshot_EmptyCorpus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, "fp-empty", nil))

	movies, ok, err := store.LoadSnapshot(ctx, "fp-empty")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, movies)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.SaveSnapshot(context.Background(), "fp-1", testMovies()))
	require.NoError(t, first.Close())

	// Reopening the same database re-runs migrate without error and
	// keeps the stored snapshot.
	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	movies, ok, err := second.LoadSnapshot(context.Background(), "fp-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, movies, 3)
}
