package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPorts(t *testing.T) {
	recommend := &MockRecommendService{}
	corpus := &MockCorpusService{}

	ports := NewPorts(recommend, corpus)

	require.NotNil(t, ports)
	assert.Equal(t, recommend, ports.Recommend)
	assert.Equal(t, corpus, ports.Corpus)
}

func TestPorts_Validate_Success(t *testing.T) {
	ports := NewPorts(&MockRecommendService{}, &MockCorpusService{})

	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingRecommend(t *testing.T) {
	ports := &Ports{Corpus: &MockCorpusService{}}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingRecommendService)
}

func TestPorts_Validate_MissingCorpus(t *testing.T) {
	ports := &Ports{Recommend: &MockRecommendService{}}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingCorpusService)
}
