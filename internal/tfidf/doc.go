// Package tfidf builds term-weighted document vectors and cosine
// similarity matrices over a movie corpus.
//
// Weighting follows the classic TF-IDF scheme: term frequency within a
// document scaled by smoothed inverse document frequency across the
// corpus, with English stop-words excluded and vectors L2-normalised.
// Document order is preserved: vector i corresponds to input document i,
// and matrix row/column i corresponds to corpus position i.
package tfidf
