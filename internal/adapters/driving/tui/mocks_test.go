package tui

import (
	"context"
	"strings"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
)

// MockRecommendService returns canned recommendations.
type MockRecommendService struct {
	Recommendations []domain.Recommendation
	Err             error
	Invalidations   int
}

func (m *MockRecommendService) Recommend(_ context.Context, _ string, _ domain.RecommendOptions) ([]domain.Recommendation, error) {
	return m.Recommendations, m.Err
}

func (m *MockRecommendService) Invalidate() {
	m.Invalidations++
}

// MockCorpusService returns a canned corpus.
type MockCorpusService struct {
	MovieList []domain.Movie
	Err       error
}

func (m *MockCorpusService) Movies(_ context.Context) ([]domain.Movie, error) {
	return m.MovieList, m.Err
}

func (m *MockCorpusService) Titles(_ context.Context, filter string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	titles := make([]string, 0, len(m.MovieList))
	for _, movie := range m.MovieList {
		if filter == "" || strings.Contains(strings.ToLower(movie.Title), strings.ToLower(filter)) {
			titles = append(titles, movie.Title)
		}
	}
	return titles, nil
}

func (m *MockCorpusService) Refresh(_ context.Context) error {
	return m.Err
}

func (m *MockCorpusService) Fingerprint(_ context.Context) (string, error) {
	return "mock-fingerprint", m.Err
}

func (m *MockCorpusService) Info(_ context.Context) (domain.CorpusInfo, error) {
	return domain.CorpusInfo{
		Path:        "memory://corpus",
		Fingerprint: "mock-fingerprint",
		MovieCount:  len(m.MovieList),
	}, m.Err
}
