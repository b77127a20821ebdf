package domain

// Recommendation is a single ranked result: a movie and its cosine
// similarity to the query title.
type Recommendation struct {
	// Movie is the recommended movie.
	Movie Movie

	// Score is the cosine similarity to the query movie, in [0, 1].
	Score float64

	// PosterURL is the resolved poster image URL, empty when no poster
	// could be found. Absence of a poster is a valid, displayed state.
	PosterURL string
}

// RecommendOptions configures a recommendation request.
type RecommendOptions struct {
	// Count is the number of recommendations to return. It is clamped
	// to the corpus size minus one (the query movie is never returned).
	Count int

	// Posters enables best-effort poster URL resolution per result.
	Posters bool
}
