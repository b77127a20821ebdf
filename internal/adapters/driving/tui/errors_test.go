package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, ErrMissingRecommendService.Error(), "recommend service")
	assert.Contains(t, ErrMissingCorpusService.Error(), "corpus service")
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
