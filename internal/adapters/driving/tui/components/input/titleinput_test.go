package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewTitleInput_Defaults(t *testing.T) {
	ti := NewTitleInput(nil)

	assert.Empty(t, ti.Value())
	assert.True(t, ti.Focused())
	assert.Equal(t, 50, ti.Width())
}

func TestTitleInput_SetValue(t *testing.T) {
	ti := NewTitleInput(nil)

	ti.SetValue("Alien")

	assert.Equal(t, "Alien", ti.Value())
}

func TestTitleInput_UpdateAcceptsTyping(t *testing.T) {
	ti := NewTitleInput(nil)

	ti.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	ti.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})

	assert.Equal(t, "al", ti.Value())
}

func TestTitleInput_FocusBlur(t *testing.T) {
	ti := NewTitleInput(nil)

	ti.Blur()
	assert.False(t, ti.Focused())

	ti.Focus()
	assert.True(t, ti.Focused())
}

func TestTitleInput_SetWidthMinimum(t *testing.T) {
	ti := NewTitleInput(nil)

	ti.SetWidth(15)

	assert.Equal(t, 15, ti.Width())
}

func TestTitleInput_Reset(t *testing.T) {
	ti := NewTitleInput(nil)
	ti.SetValue("Alien")

	ti.Reset()

	assert.Empty(t, ti.Value())
}

func TestTitleInput_ViewContainsLabel(t *testing.T) {
	ti := NewTitleInput(nil)

	assert.Contains(t, ti.View(), "Title:")
}
