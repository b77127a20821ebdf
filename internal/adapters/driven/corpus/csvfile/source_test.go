package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestSource_Load(t *testing.T) {
	path := writeCorpus(t, `id,title,genres,keywords,overview
1,Alien,sci-fi horror,alien ship,a crew battles a creature
2,Aliens,sci-fi action,colonial marines,marines fight aliens
3,Romance,drama romance,wedding,two people fall in love
`)

	movies, err := NewSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 3)

	assert.Equal(t, 1, movies[0].ID)
	assert.Equal(t, "Alien", movies[0].Title)
	assert.Equal(t, "sci-fi horror", movies[0].Genres)
	assert.Equal(t, "alien ship", movies[0].Keywords)
	assert.Equal(t, "a crew battles a creature", movies[0].Overview)

	// Row order is preserved.
	assert.Equal(t, "Aliens", movies[1].Title)
	assert.Equal(t, "Romance", movies[2].Title)
}

func TestSource_Load_ReorderedAndExtraColumns(t *testing.T) {
	path := writeCorpus(t, `title,overview,id,genres,keywords,budget
Alien,a crew battles a creature,1,sci-fi horror,alien ship,11000000
`)

	movies, err := NewSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, 1, movies[0].ID)
	assert.Equal(t, "alien ship", movies[0].Keywords)
}

func TestSource_Load_ShortRowsBecomeEmptyFields(t *testing.T) {
	path := writeCorpus(t, `id,title,genres,keywords,overview
1,Sparse Movie
`)

	movies, err := NewSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Sparse Movie", movies[0].Title)
	assert.Empty(t, movies[0].Genres)
	assert.Empty(t, movies[0].Overview)
}

func TestSource_Load_MissingFile(t *testing.T) {
	_, err := NewSource("/nonexistent/movies.csv").Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorpusLoad)
}

func TestSource_Load_MissingColumn(t *testing.T) {
	path := writeCorpus(t, `id,title,genres
1,Alien,sci-fi
`)

	_, err := NewSource(path).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorpusLoad)
	assert.Contains(t, err.Error(), "keywords")
}

func TestSource_Load_BadID(t *testing.T) {
	path := writeCorpus(t, `id,title,genres,keywords,overview
abc,Alien,sci-fi,alien,crew
`)

	_, err := NewSource(path).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorpusLoad)
}

func TestSource_Fingerprint(t *testing.T) {
	content := `id,title,genres,keywords,overview
1,Alien,sci-fi horror,alien ship,a crew battles a creature
`
	path := writeCorpus(t, content)
	source := NewSource(path)

	first, err := source.Fingerprint()
	require.NoError(t, err)

	// Unchanged file, unchanged fingerprint.
	second, err := source.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Changed content, changed fingerprint.
	require.NoError(t, os.WriteFile(path, []byte(content+"2,Aliens,sci-fi,marines,sequel\n"), 0600))
	third, err := source.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}
