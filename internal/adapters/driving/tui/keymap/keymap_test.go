package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Contains(t, km.Quit.Keys(), "q")
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
	assert.Contains(t, km.Back.Keys(), "esc")
	assert.Contains(t, km.Recommend.Keys(), "enter")
	assert.Contains(t, km.MoreResults.Keys(), "+")
	assert.Contains(t, km.FewerResults.Keys(), "-")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	assert.Len(t, help, 2)
}

func TestResultsHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ResultsHelp()

	assert.Len(t, help, 4)
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.FullHelp()

	assert.Len(t, help, 3)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("x", km.Quit))
}
