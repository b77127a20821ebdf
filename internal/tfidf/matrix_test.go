package tfidf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fitVectors(t *testing.T, docs []string) []Vector {
	t.Helper()
	model, err := Fit(docs)
	require.NoError(t, err)
	return model.Vectors()
}

func TestSimilarities_DiagonalIsOne(t *testing.T) {
	vectors := fitVectors(t, []string{
		"wizard school magic",
		"magic ring quest mountain",
		"courtroom lawyer verdict",
	})

	m := Similarities(vectors)
	for i := 0; i < m.Size(); i++ {
		assert.Equal(t, 1.0, m.At(i, i), "self-similarity at %d", i)
	}
}

func TestSimilarities_ZeroVectorDiagonalIsZero(t *testing.T) {
	vectors := fitVectors(t, []string{"wizard school magic", ""})

	m := Similarities(vectors)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 0.0, m.At(1, 1))
	assert.Equal(t, 0.0, m.At(0, 1))
	assert.Equal(t, 0.0, m.At(1, 0))
}

func TestSimilarities_Symmetric(t *testing.T) {
	vectors := fitVectors(t, []string{
		"western outlaw desert showdown",
		"desert survival heat",
		"outlaw bounty hunter desert",
		"ballet dancer rivalry",
	})

	m := Similarities(vectors)
	for i := 0; i < m.Size(); i++ {
		for j := 0; j < m.Size(); j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i), "sim[%d][%d] != sim[%d][%d]", i, j, j, i)
		}
	}
}

func TestSimilarities_ScoresWithinRange(t *testing.T) {
	vectors := fitVectors(t, []string{
		"robot uprising future city",
		"robot detective noir city",
		"cooking contest small town",
	})

	m := Similarities(vectors)
	for i := 0; i < m.Size(); i++ {
		for j := 0; j < m.Size(); j++ {
			s := m.At(i, j)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0+1e-12)
		}
	}
}

func TestSimilarities_Deterministic(t *testing.T) {
	docs := []string{
		"vampire castle gothic",
		"vampire hunter crossbow",
		"silent film restoration",
	}

	first := Similarities(fitVectors(t, docs))
	second := Similarities(fitVectors(t, docs))

	require.Equal(t, first.Size(), second.Size())
	for i := 0; i < first.Size(); i++ {
		assert.Equal(t, first.Row(i), second.Row(i))
	}
}

func TestCosine_ZeroMagnitude(t *testing.T) {
	u := Vector{0: 0.5, 1: 0.5}
	empty := Vector{}

	assert.Equal(t, 0.0, Cosine(u, empty, 1, 0))
	assert.Equal(t, 0.0, Cosine(empty, u, 0, 1))
}

func TestCosine_Orthogonal(t *testing.T) {
	u := Vector{0: 1}
	v := Vector{1: 1}
	assert.Equal(t, 0.0, Cosine(u, v, 1, 1))
}

func TestMatrix_RowIsACopy(t *testing.T) {
	vectors := fitVectors(t, []string{"storm chasers tornado", "storm at sea"})
	m := Similarities(vectors)

	row := m.Row(0)
	row[1] = 99

	assert.NotEqual(t, 99.0, m.At(0, 1))
}
