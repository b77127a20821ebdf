package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driven"
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driving"
	"github.com/cinematch-labs/cinematch-cli/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService loads the movie corpus from its source, serving it from
// the snapshot cache when the source is unchanged. The corpus order is
// preserved through every path: it defines the similarity matrix indices.
type CorpusService struct {
	source    driven.CorpusSource
	snapshots driven.SnapshotStore

	mu           sync.Mutex
	movies       []domain.Movie
	fingerprint  string
	fromSnapshot bool
	loaded       bool
}

// NewCorpusService creates a new corpus service.
// The snapshots parameter is optional (can be nil); without it every
// load re-parses the source.
func NewCorpusService(source driven.CorpusSource, snapshots driven.SnapshotStore) *CorpusService {
	return &CorpusService{
		source:    source,
		snapshots: snapshots,
	}
}

// Movies returns the corpus in load order, loading it on first use.
func (s *CorpusService) Movies(ctx context.Context) ([]domain.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx, false); err != nil {
		return nil, err
	}
	return s.movies, nil
}

// Titles returns all corpus titles in load order, optionally filtered by
// a case-insensitive substring.
func (s *CorpusService) Titles(ctx context.Context, filter string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx, false); err != nil {
		return nil, err
	}

	filter = strings.ToLower(strings.TrimSpace(filter))
	titles := make([]string, 0, len(s.movies))
	for _, m := range s.movies {
		if filter == "" || strings.Contains(strings.ToLower(m.Title), filter) {
			titles = append(titles, m.Title)
		}
	}
	return titles, nil
}

// Refresh forces a re-read from the source, rewriting the snapshot.
func (s *CorpusService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLoaded(ctx, true)
}

// Fingerprint returns the content hash of the loaded corpus.
func (s *CorpusService) Fingerprint(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx, false); err != nil {
		return "", err
	}
	return s.fingerprint, nil
}

// Info describes the corpus for display.
func (s *CorpusService) Info(ctx context.Context) (domain.CorpusInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx, false); err != nil {
		return domain.CorpusInfo{}, err
	}

	return domain.CorpusInfo{
		Path:         s.source.Path(),
		Fingerprint:  s.fingerprint,
		MovieCount:   len(s.movies),
		FromSnapshot: s.fromSnapshot,
	}, nil
}

// ensureLoaded loads the corpus if needed (caller must hold lock).
// When force is true the source is always re-read and the snapshot
// rewritten, even if the fingerprint is unchanged.
func (s *CorpusService) ensureLoaded(ctx context.Context, force bool) error {
	fingerprint, err := s.source.Fingerprint()
	if err != nil {
		return fmt.Errorf("corpus fingerprint: %w", err)
	}

	// Already loaded and unchanged.
	if s.loaded && !force && fingerprint == s.fingerprint {
		return nil
	}

	logger.Section("Corpus Load")
	logger.Debug("Source: %s", s.source.Path())
	logger.Debug("Fingerprint: %s", fingerprint)

	// Try the snapshot cache first.
	if s.snapshots != nil && !force {
		movies, ok, err := s.snapshots.LoadSnapshot(ctx, fingerprint)
		if err != nil {
			logger.Warn("Snapshot read failed: %v (falling back to source)", err)
		} else if ok {
			logger.Info("Loaded %d movies from snapshot", len(movies))
			s.movies = movies
			s.fingerprint = fingerprint
			s.fromSnapshot = true
			s.loaded = true
			return nil
		}
	}

	// Parse the source.
	movies, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("corpus load: %w", err)
	}
	logger.Info("Parsed %d movies from source", len(movies))

	// Cache for next time. Best-effort: a snapshot failure never fails
	// the load, the snapshot is re-derivable.
	if s.snapshots != nil {
		if err := s.snapshots.SaveSnapshot(ctx, fingerprint, movies); err != nil {
			logger.Warn("Snapshot write failed: %v", err)
		}
	}

	s.movies = movies
	s.fingerprint = fingerprint
	s.fromSnapshot = false
	s.loaded = true
	return nil
}
