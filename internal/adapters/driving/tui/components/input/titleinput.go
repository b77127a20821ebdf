// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/styles"
)

// TitleInput wraps a bubbles textinput for picking a movie title.
type TitleInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewTitleInput creates a new title input component.
func NewTitleInput(s *styles.Styles) *TitleInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Type a movie title..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &TitleInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the title input.
func (t *TitleInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (t *TitleInput) Update(msg tea.Msg) (*TitleInput, tea.Cmd) {
	var cmd tea.Cmd
	t.textinput, cmd = t.textinput.Update(msg)
	return t, cmd
}

// View renders the title input.
func (t *TitleInput) View() string {
	label := t.styles.Title.Render("Title: ")
	input := t.styles.InputField.Render(t.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (t *TitleInput) Value() string {
	return t.textinput.Value()
}

// SetValue sets the input value.
func (t *TitleInput) SetValue(value string) {
	t.textinput.SetValue(value)
	t.textinput.CursorEnd()
}

// Focus sets focus on the input.
func (t *TitleInput) Focus() tea.Cmd {
	return t.textinput.Focus()
}

// Blur removes focus from the input.
func (t *TitleInput) Blur() {
	t.textinput.Blur()
}

// Focused returns whether the input is focused.
func (t *TitleInput) Focused() bool {
	return t.textinput.Focused()
}

// SetWidth sets the width of the input.
func (t *TitleInput) SetWidth(width int) {
	t.width = width
	// Account for label and padding
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	t.textinput.Width = inputWidth
}

// Width returns the current width.
func (t *TitleInput) Width() int {
	return t.width
}

// Reset clears the input.
func (t *TitleInput) Reset() {
	t.textinput.Reset()
}
