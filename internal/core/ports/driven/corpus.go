package driven

import (
	"context"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
)

// CorpusSource reads the movie corpus from its authoritative source.
// Backed by a CSV file in the default setup.
type CorpusSource interface {
	// Load reads all movies in source order. Order matters: the position
	// of a movie in the returned slice is its index into the similarity
	// matrix for the lifetime of the corpus.
	Load(ctx context.Context) ([]domain.Movie, error)

	// Fingerprint returns a stable content hash of the source. Two calls
	// return the same value as long as the underlying data is unchanged.
	Fingerprint() (string, error)

	// Path returns a human-readable location of the source.
	Path() string
}

// SnapshotStore caches a parsed corpus keyed by source fingerprint so
// subsequent loads skip re-parsing. The snapshot is always re-derivable
// from the source; it is a cache, not a system of record.
type SnapshotStore interface {
	// SaveSnapshot replaces any stored snapshot with the given movies,
	// preserving their order, under the given fingerprint.
	SaveSnapshot(ctx context.Context, fingerprint string, movies []domain.Movie) error

	// LoadSnapshot returns the movies stored under the fingerprint, in
	// their original order. Returns ok=false when no snapshot matches.
	LoadSnapshot(ctx context.Context, fingerprint string) (movies []domain.Movie, ok bool, err error)

	// Close releases resources.
	Close() error
}
