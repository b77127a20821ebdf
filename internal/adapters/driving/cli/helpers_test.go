package cli

import (
	"context"
	"errors"

	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driven/storage/memory"
	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
	"github.com/cinematch-labs/cinematch-cli/internal/core/services"
)

// testMovies returns a small corpus with two overlapping sci-fi titles and
// one unrelated romance.
func testMovies() []domain.Movie {
	return []domain.Movie{
		{
			ID:       1,
			Title:    "Alien",
			Genres:   "horror sci-fi",
			Keywords: "space alien crew",
			Overview: "A commercial crew encounters a deadly alien lifeform in deep space.",
		},
		{
			ID:       2,
			Title:    "Aliens",
			Genres:   "action sci-fi",
			Keywords: "space alien marines",
			Overview: "Marines return to the alien planet to rescue colonists in deep space.",
		},
		{
			ID:       3,
			Title:    "The Notebook",
			Genres:   "romance drama",
			Keywords: "love letters summer",
			Overview: "A couple falls in love over one unforgettable summer.",
		},
	}
}

// setupTestServices wires in-memory services and returns a cleanup func.
func setupTestServices() func() {
	oldRecommend := recommendService
	oldCorpus := corpusService
	oldConfig := configStore

	source := memory.NewCorpusSource(testMovies())
	snapshots := memory.NewSnapshotStore()
	corpus := services.NewCorpusService(source, snapshots)

	corpusService = corpus
	recommendService = services.NewRecommendService(corpus, nil)
	configStore = nil

	return func() {
		recommendService = oldRecommend
		corpusService = oldCorpus
		configStore = oldConfig
	}
}

// errRecommendService always fails, for error-path tests.
type errRecommendService struct{}

func (s *errRecommendService) Recommend(_ context.Context, _ string, _ domain.RecommendOptions) ([]domain.Recommendation, error) {
	return nil, errors.New("boom")
}

func (s *errRecommendService) Invalidate() {}
