package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBar_Defaults(t *testing.T) {
	b := NewBar(nil, nil)

	assert.Equal(t, StateReady, b.State())
	assert.Equal(t, 80, b.Width())
	assert.Empty(t, b.Message())
}

func TestBar_SetState(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetState(StateRanking)

	assert.Equal(t, StateRanking, b.State())
	assert.Contains(t, b.View(), "Ranking...")
}

func TestBar_ErrorStateShowsMessage(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetState(StateError)
	b.SetMessage("corpus missing")

	assert.Contains(t, b.View(), "Error: corpus missing")
}

func TestBar_ResultsStateShowsCount(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetState(StateResults)
	b.SetResultCount(5)

	assert.Contains(t, b.View(), "5 recommendations")
}

func TestBar_ReadyWhenNoResults(t *testing.T) {
	b := NewBar(nil, nil)

	assert.Contains(t, b.View(), "Ready")
}

func TestBar_Clear(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetState(StateError)
	b.SetMessage("boom")
	b.SetResultCount(3)

	b.Clear()

	assert.Equal(t, StateReady, b.State())
	assert.Empty(t, b.Message())
	assert.Equal(t, 0, b.ResultCount())
}

func TestBar_SetWidth(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetWidth(120)

	assert.Equal(t, 120, b.Width())
}

func TestBar_HintsShown(t *testing.T) {
	b := NewBar(nil, nil)

	view := b.View()

	assert.Contains(t, view, "q: quit")
	assert.Contains(t, view, "?: help")
}
