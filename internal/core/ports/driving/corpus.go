package driving

import (
	"context"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
)

// CorpusService provides access to the loaded movie corpus.
type CorpusService interface {
	// Movies returns the corpus in load order, loading it on first use.
	Movies(ctx context.Context) ([]domain.Movie, error)

	// Titles returns all corpus titles in load order, optionally
	// filtered by a case-insensitive substring.
	Titles(ctx context.Context, filter string) ([]string, error)

	// Refresh forces a re-read from the source, rewriting the snapshot.
	Refresh(ctx context.Context) error

	// Fingerprint returns the content hash of the loaded corpus.
	Fingerprint(ctx context.Context) (string, error)

	// Info describes the corpus for display.
	Info(ctx context.Context) (domain.CorpusInfo, error)
}
