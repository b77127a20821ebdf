package tfidf

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
	"github.com/cinematch-labs/cinematch-cli/internal/logger"
)

// tokenPattern matches terms of at least two letters or digits.
// Compiled once at package initialisation.
var tokenPattern = regexp.MustCompile(`[a-z0-9]{2,}`)

// Vector is a sparse term-weight vector: vocabulary index -> weight.
type Vector map[int]float64

// Model holds the fitted vocabulary and the per-document TF-IDF vectors.
type Model struct {
	vocab   map[string]int
	vectors []Vector
}

// Fit builds the vocabulary over the whole corpus and produces one
// L2-normalised TF-IDF vector per document, in input order.
//
// IDF is smoothed: idf(t) = ln((1+N)/(1+df(t))) + 1, which keeps weights
// finite for terms present in every document.
//
// Returns domain.ErrEmptyVocabulary when the corpus is empty or every
// document is empty or stop-words only.
func Fit(docs []string) (*Model, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("fit: no documents: %w", domain.ErrEmptyVocabulary)
	}

	logger.Section("TF-IDF Fit")
	logger.Debug("Documents: %d", len(docs))

	// Tokenise once; track document frequency per term.
	tokenised := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := Tokenize(doc)
		tokenised[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	if len(df) == 0 {
		logger.Warn("No indexable terms in corpus")
		return nil, fmt.Errorf("fit: all documents empty or stop-words only: %w", domain.ErrEmptyVocabulary)
	}

	// Assign vocabulary indices in sorted term order so that identical
	// corpora always produce identical vectors.
	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}

	logger.Debug("Vocabulary size: %d", len(vocab))

	// Precompute smoothed IDF per term index.
	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, t := range terms {
		idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	// Build and normalise one vector per document.
	vectors := make([]Vector, len(docs))
	for i, tokens := range tokenised {
		vectors[i] = buildVector(tokens, vocab, idf)
	}

	return &Model{vocab: vocab, vectors: vectors}, nil
}

// buildVector computes the L2-normalised TF-IDF vector for one document.
func buildVector(tokens []string, vocab map[string]int, idf []float64) Vector {
	vec := make(Vector)
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[int]int)
	for _, tok := range tokens {
		if idx, ok := vocab[tok]; ok {
			counts[idx]++
		}
	}

	docLen := float64(len(tokens))
	var norm float64
	for idx, count := range counts {
		w := (float64(count) / docLen) * idf[idx]
		vec[idx] = w
		norm += w * w
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}

	return vec
}

// Vectors returns the per-document vectors in corpus order.
func (m *Model) Vectors() []Vector {
	return m.vectors
}

// VocabularySize returns the number of distinct indexed terms.
func (m *Model) VocabularySize() int {
	return len(m.vocab)
}

// TermIndex returns the vocabulary index of a term, or -1 if absent.
func (m *Model) TermIndex(term string) int {
	idx, ok := m.vocab[strings.ToLower(term)]
	if !ok {
		return -1
	}
	return idx
}

// Tokenize lowercases the text and extracts terms of two or more
// letters/digits, dropping English stop-words.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
