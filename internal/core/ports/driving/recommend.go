package driving

import (
	"context"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
)

// RecommendService ranks corpus movies by similarity to a query title.
type RecommendService interface {
	// Recommend returns the movies most similar to the given title,
	// descending by score, never including the query movie itself.
	// The count in opts is clamped to the corpus size minus one.
	// Returns domain.ErrTitleNotFound when the title is not in the corpus.
	Recommend(ctx context.Context, title string, opts domain.RecommendOptions) ([]domain.Recommendation, error)

	// Invalidate drops the cached similarity matrix. The next request
	// recomputes it from the current corpus.
	Invalidate()
}
