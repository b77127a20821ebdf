// Package tmdb resolves movie poster URLs from The Movie Database API.
//
// Lookups are best-effort: every failure path wraps domain.ErrPosterLookup
// and callers fall back to displaying no image. Requests are throttled
// with a token bucket to stay inside the API's rate limits.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driven"
	"github.com/cinematch-labs/cinematch-cli/internal/logger"
)

const (
	// DefaultAPIBase is the TMDB API root.
	DefaultAPIBase = "https://api.themoviedb.org/3"

	// DefaultImageBase is the poster image root at w342 width.
	DefaultImageBase = "https://image.tmdb.org/t/p/w342"

	// RequestsPerSecond is the proactive throttle rate.
	RequestsPerSecond = 4

	// requestTimeout bounds a single lookup.
	requestTimeout = 10 * time.Second
)

// Ensure Provider implements the interface.
var _ driven.PosterProvider = (*Provider)(nil)

// movieResponse is the subset of the TMDB movie payload we read.
type movieResponse struct {
	PosterPath *string `json:"poster_path"`
}

// Provider is a TMDB-backed implementation of driven.PosterProvider.
type Provider struct {
	apiKey    string
	apiBase   string
	imageBase string
	client    *http.Client
	limiter   *rate.Limiter
}

// Option configures a Provider.
type Option func(*Provider)

// WithAPIBase overrides the API root. Useful for testing.
func WithAPIBase(base string) Option {
	return func(p *Provider) { p.apiBase = base }
}

// WithImageBase overrides the image root.
func WithImageBase(base string) Option {
	return func(p *Provider) { p.imageBase = base }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) { p.client = client }
}

// NewProvider creates a poster provider using the given API key.
func NewProvider(apiKey string, opts ...Option) *Provider {
	p := &Provider{
		apiKey:    apiKey,
		apiBase:   DefaultAPIBase,
		imageBase: DefaultImageBase,
		client:    &http.Client{Timeout: requestTimeout},
		limiter:   rate.NewLimiter(rate.Limit(RequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PosterURL looks up the poster image URL for a movie id.
// ok is false when the movie exists but has no poster, or when TMDB does
// not know the id at all - both display as "no image".
func (p *Provider) PosterURL(ctx context.Context, movieID int) (string, bool, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", false, fmt.Errorf("tmdb throttle: %v: %w", err, domain.ErrPosterLookup)
	}

	endpoint := fmt.Sprintf("%s/movie/%d?api_key=%s", p.apiBase, movieID, url.QueryEscape(p.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false, fmt.Errorf("tmdb request: %v: %w", err, domain.ErrPosterLookup)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("tmdb fetch movie %d: %v: %w", movieID, err, domain.ErrPosterLookup)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		logger.Debug("TMDB has no entry for movie %d", movieID)
		return "", false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("tmdb status %d for movie %d: %w", resp.StatusCode, movieID, domain.ErrPosterLookup)
	}

	var body movieResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", false, fmt.Errorf("tmdb decode movie %d: %v: %w", movieID, err, domain.ErrPosterLookup)
	}

	if body.PosterPath == nil || *body.PosterPath == "" {
		return "", false, nil
	}

	return p.imageBase + *body.PosterPath, true, nil
}
