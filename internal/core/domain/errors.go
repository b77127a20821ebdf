package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrCorpusLoad indicates the movie corpus is unavailable or corrupt.
	// This is fatal: no recommendations can be computed without a corpus.
	ErrCorpusLoad = errors.New("corpus load failed")

	// ErrEmptyVocabulary indicates the corpus produced no indexable terms
	// (empty corpus, or every document is empty or stop-words only).
	ErrEmptyVocabulary = errors.New("empty vocabulary")

	// ErrTitleNotFound indicates the queried title is not in the corpus.
	// Local to the request; the session continues.
	ErrTitleNotFound = errors.New("title not found")

	// ErrPosterLookup indicates a poster could not be resolved.
	// Non-fatal: the row is displayed without an image.
	ErrPosterLookup = errors.New("poster lookup failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
