package driven

import "context"

// PosterProvider resolves a movie id to a poster image URL.
// Backed by the TMDB API. Optional: a nil provider disables posters.
type PosterProvider interface {
	// PosterURL returns the poster image URL for a movie.
	// ok is false when the movie has no poster (a valid state).
	// Errors are non-fatal; callers fall back to displaying no image.
	PosterURL(ctx context.Context, movieID int) (url string, ok bool, err error)
}
