package domain

import "strings"

// Movie is a single corpus entry. The position of a movie within the
// loaded corpus is its row/column index into the similarity matrix, so
// corpus order must be preserved across load, snapshot, and scoring.
type Movie struct {
	// ID is the external movie identifier (TMDB id for poster lookup).
	ID int

	// Title is the display title. Assumed unique for lookup; duplicate
	// titles resolve to the first corpus position.
	Title string

	// Genres is a free-text genre blob (e.g. "Action Science Fiction").
	Genres string

	// Keywords is a free-text keyword blob.
	Keywords string

	// Overview is the plot summary.
	Overview string
}

// CombinedFeatures concatenates the textual fields into the single
// document string fed to the vectorizer. Missing fields contribute an
// empty placeholder; the result is always re-derivable and is never
// stored on the struct.
func (m Movie) CombinedFeatures() string {
	return m.Genres + " " + m.Keywords + " " + m.Overview
}

// MatchesTitle reports whether the movie's title equals the query,
// ignoring case and surrounding whitespace.
func (m Movie) MatchesTitle(query string) bool {
	return strings.EqualFold(strings.TrimSpace(m.Title), strings.TrimSpace(query))
}
