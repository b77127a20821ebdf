package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	assert.Equal(t, "picker", ViewPicker.String())
	assert.Equal(t, "results", ViewResults.String())
	assert.Equal(t, "help", ViewHelp.String())
	assert.Equal(t, "unknown", ViewType(99).String())
}
