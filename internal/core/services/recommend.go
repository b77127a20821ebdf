package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driven"
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driving"
	"github.com/cinematch-labs/cinematch-cli/internal/logger"
	"github.com/cinematch-labs/cinematch-cli/internal/tfidf"
)

// Ensure RecommendService implements the interface.
var _ driving.RecommendService = (*RecommendService)(nil)

// scoredMovie pairs a corpus position with its similarity score.
type scoredMovie struct {
	position int
	score    float64
}

// RecommendService ranks corpus movies by cosine similarity of their
// TF-IDF feature vectors. The similarity matrix is memoized per corpus
// fingerprint: repeated requests over an unchanged corpus reuse it.
type RecommendService struct {
	corpus  driving.CorpusService
	posters driven.PosterProvider

	mu                sync.Mutex
	cachedFingerprint string
	matrix            *tfidf.Matrix
}

// NewRecommendService creates a new recommendation service.
// The posters parameter is optional (can be nil); without it results
// carry no poster URLs.
func NewRecommendService(corpus driving.CorpusService, posters driven.PosterProvider) *RecommendService {
	return &RecommendService{
		corpus:  corpus,
		posters: posters,
	}
}

// Recommend returns the movies most similar to the given title.
func (s *RecommendService) Recommend(
	ctx context.Context, title string, opts domain.RecommendOptions,
) ([]domain.Recommendation, error) {
	logger.Section("Recommendation")
	logger.Debug("Query: %q, count: %d", title, opts.Count)

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("recommend: empty title: %w", domain.ErrInvalidInput)
	}

	movies, fingerprint, err := s.corpusState(ctx)
	if err != nil {
		return nil, err
	}

	// Resolve the query position before touching the matrix: an unknown
	// title must not trigger a similarity computation.
	queryPos := -1
	for i, m := range movies {
		if m.MatchesTitle(title) {
			// Duplicate titles resolve to the first corpus position.
			queryPos = i
			break
		}
	}
	if queryPos == -1 {
		logger.Debug("Title %q not in corpus", title)
		return nil, fmt.Errorf("recommend %q: %w", title, domain.ErrTitleNotFound)
	}
	logger.Debug("Query position: %d (%s)", queryPos, movies[queryPos].Title)

	matrix, err := s.ensureMatrix(movies, fingerprint)
	if err != nil {
		return nil, err
	}

	// Rank every other movie by descending score. The sort is stable so
	// ties keep corpus order.
	row := matrix.Row(queryPos)
	scored := make([]scoredMovie, 0, len(row))
	for pos, score := range row {
		if pos == queryPos {
			continue
		}
		scored = append(scored, scoredMovie{position: pos, score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	count := clampCount(opts.Count, len(movies))
	scored = scored[:count]
	logger.Info("Returning %d recommendations", len(scored))

	results := make([]domain.Recommendation, len(scored))
	for i, sm := range scored {
		results[i] = domain.Recommendation{
			Movie: movies[sm.position],
			Score: sm.score,
		}
	}

	if opts.Posters {
		s.attachPosters(ctx, results)
	}

	return results, nil
}

// Invalidate drops the cached similarity matrix.
func (s *RecommendService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cachedFingerprint = ""
	s.matrix = nil
	logger.Debug("Similarity matrix cache invalidated")
}

// corpusState returns the movie list together with the fingerprint it
// was loaded under. The fingerprint is read on both sides of the movie
// fetch: if they disagree the corpus reloaded in between, and the pair
// would associate the old movie positions with the new content hash.
func (s *RecommendService) corpusState(ctx context.Context) ([]domain.Movie, string, error) {
	fingerprint, err := s.corpus.Fingerprint(ctx)
	if err != nil {
		return nil, "", err
	}

	for {
		movies, err := s.corpus.Movies(ctx)
		if err != nil {
			return nil, "", err
		}
		again, err := s.corpus.Fingerprint(ctx)
		if err != nil {
			return nil, "", err
		}
		if again == fingerprint {
			return movies, fingerprint, nil
		}
		logger.Debug("Corpus reloaded mid-request, retrying (%s -> %s)", fingerprint, again)
		fingerprint = again
	}
}

// ensureMatrix returns the cached similarity matrix, recomputing it when
// the corpus fingerprint has changed since the last build. The cached
// matrix must also match the corpus size: matrix row i is corpus
// position i, so a size disagreement means the cache is stale no matter
// what the fingerprint says.
func (s *RecommendService) ensureMatrix(movies []domain.Movie, fingerprint string) (*tfidf.Matrix, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.matrix != nil && s.cachedFingerprint == fingerprint && s.matrix.Size() == len(movies) {
		logger.Debug("Similarity matrix cache hit")
		return s.matrix, nil
	}

	logger.Info("Building similarity matrix for %d movies", len(movies))

	docs := make([]string, len(movies))
	for i, m := range movies {
		docs[i] = m.CombinedFeatures()
	}

	model, err := tfidf.Fit(docs)
	if err != nil {
		return nil, fmt.Errorf("vectorize corpus: %w", err)
	}
	logger.Debug("Vocabulary: %d terms", model.VocabularySize())

	s.matrix = tfidf.Similarities(model.Vectors())
	s.cachedFingerprint = fingerprint
	return s.matrix, nil
}

// attachPosters resolves poster URLs for each result, best-effort.
// Lookup failures degrade the row to no image and never fail the request.
func (s *RecommendService) attachPosters(ctx context.Context, results []domain.Recommendation) {
	if s.posters == nil {
		logger.Debug("No poster provider configured")
		return
	}

	for i := range results {
		url, ok, err := s.posters.PosterURL(ctx, results[i].Movie.ID)
		if err != nil {
			logger.Warn("Poster lookup for %q failed: %v", results[i].Movie.Title, err)
			continue
		}
		if ok {
			results[i].PosterURL = url
		}
	}
}

// clampCount bounds the requested count to [0, corpusSize-1].
func clampCount(count, corpusSize int) int {
	limit := corpusSize - 1
	if limit < 0 {
		limit = 0
	}
	if count < 0 {
		return 0
	}
	if count > limit {
		return limit
	}
	return count
}
