package domain

// CorpusInfo describes the loaded corpus for display.
type CorpusInfo struct {
	// Path is the source location (CSV file path).
	Path string

	// Fingerprint is the content hash of the source.
	Fingerprint string

	// MovieCount is the number of movies in the corpus.
	MovieCount int

	// FromSnapshot is true when the corpus was served from the local
	// snapshot cache rather than re-parsed from the source.
	FromSnapshot bool
}
