package memory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driven"
)

// Ensure CorpusSource implements the interface.
var _ driven.CorpusSource = (*CorpusSource)(nil)

// CorpusSource is an in-memory implementation of driven.CorpusSource.
// SetMovies changes the content and therefore the fingerprint, which is
// how tests exercise cache invalidation.
type CorpusSource struct {
	mu     sync.RWMutex
	movies []domain.Movie
	loads  int
}

// NewCorpusSource creates a new in-memory corpus source.
func NewCorpusSource(movies []domain.Movie) *CorpusSource {
	return &CorpusSource{movies: append([]domain.Movie(nil), movies...)}
}

// Load returns the movies in their configured order.
func (s *CorpusSource) Load(_ context.Context) ([]domain.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	return append([]domain.Movie(nil), s.movies...), nil
}

// Fingerprint hashes the current content.
func (s *CorpusSource) Fingerprint() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h := sha256.New()
	for _, m := range s.movies {
		fmt.Fprintf(h, "%d\x00%s\x00%s\n", m.ID, m.Title, m.CombinedFeatures())
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Path returns a fixed placeholder location.
func (s *CorpusSource) Path() string {
	return "memory://corpus"
}

// SetMovies replaces the content, changing the fingerprint.
func (s *CorpusSource) SetMovies(movies []domain.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies = append([]domain.Movie(nil), movies...)
}

// Loads returns how many times Load has been called.
func (s *CorpusSource) Loads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loads
}
