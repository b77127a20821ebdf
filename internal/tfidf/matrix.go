package tfidf

import (
	"math"

	"github.com/cinematch-labs/cinematch-cli/internal/logger"
)

// Matrix is a dense, symmetric N×N cosine similarity matrix.
// Row and column i correspond to corpus position i.
type Matrix struct {
	n    int
	data []float64
}

// Similarities computes the full pairwise cosine similarity matrix for
// the given vectors. This is the single most expensive step, O(N²·D);
// callers cache the result for the lifetime of the loaded corpus.
func Similarities(vectors []Vector) *Matrix {
	n := len(vectors)
	logger.Debug("Computing %dx%d similarity matrix", n, n)

	m := &Matrix{n: n, data: make([]float64, n*n)}

	norms := make([]float64, n)
	for i, v := range vectors {
		norms[i] = magnitude(v)
	}

	for i := 0; i < n; i++ {
		// Diagonal is exactly 1 for any non-zero vector.
		if norms[i] > 0 {
			m.data[i*n+i] = 1
		}
		for j := i + 1; j < n; j++ {
			s := Cosine(vectors[i], vectors[j], norms[i], norms[j])
			m.data[i*n+j] = s
			m.data[j*n+i] = s
		}
	}

	return m
}

// Cosine returns dot(u,v)/(|u||v|), defined as 0 when either vector has
// zero magnitude. The magnitudes are passed in so callers iterating over
// all pairs compute each one only once.
func Cosine(u, v Vector, normU, normV float64) float64 {
	if normU == 0 || normV == 0 {
		return 0
	}

	// Iterate over the smaller vector.
	if len(v) < len(u) {
		u, v = v, u
	}

	var dot float64
	for idx, w := range u {
		if w2, ok := v[idx]; ok {
			dot += w * w2
		}
	}

	return dot / (normU * normV)
}

// magnitude returns the L2 norm of a sparse vector.
func magnitude(v Vector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Size returns N, the number of rows/columns.
func (m *Matrix) Size() int {
	return m.n
}

// At returns the similarity between corpus positions i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, m.n)
	copy(row, m.data[i*m.n:(i+1)*m.n])
	return row
}
