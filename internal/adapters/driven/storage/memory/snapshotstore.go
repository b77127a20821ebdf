// Package memory provides in-memory implementations of driven storage
// ports, used in tests and as lightweight fallbacks.
package memory

import (
	"context"
	"sync"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory implementation of driven.SnapshotStore.
type SnapshotStore struct {
	mu          sync.RWMutex
	fingerprint string
	movies      []domain.Movie
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// SaveSnapshot replaces the stored snapshot.
func (s *SnapshotStore) SaveSnapshot(_ context.Context, fingerprint string, movies []domain.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fingerprint = fingerprint
	s.movies = append([]domain.Movie(nil), movies...)
	return nil
}

// LoadSnapshot returns the movies stored under the fingerprint.
func (s *SnapshotStore) LoadSnapshot(_ context.Context, fingerprint string) ([]domain.Movie, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.movies == nil || s.fingerprint != fingerprint {
		return nil, false, nil
	}
	return append([]domain.Movie(nil), s.movies...), true, nil
}

// Close releases resources. No-op for the in-memory store.
func (s *SnapshotStore) Close() error {
	return nil
}
