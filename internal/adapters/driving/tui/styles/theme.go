// Package styles defines the CineMatch colour palette and the lipgloss
// styles built from it. Every view and component renders through a
// *Styles so the whole TUI can be re-skinned from one Theme.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette the styles are derived from.
type Theme struct {
	// Accent colours. Primary marks headers and the selection bar,
	// Secondary marks subheaders and scores.
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Base text colours.
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color

	// Outcome colours for status messages.
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Border is used for input fields and framed containers.
	Border lipgloss.Color
}

// DefaultTheme is a dark palette: marquee red and gold accents over a
// Catppuccin-ish base.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#E50914"),
		Secondary:  lipgloss.Color("#F5C518"),
		Background: lipgloss.Color("#1E1E2E"),
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Success:    lipgloss.Color("#A6E3A1"),
		Warning:    lipgloss.Color("#F9E2AF"),
		Error:      lipgloss.Color("#F38BA8"),
		Border:     lipgloss.Color("#45475A"),
	}
}

// Styles holds the pre-built lipgloss styles the TUI renders with.
type Styles struct {
	theme *Theme

	// Text styles.
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	// Outcome styles.
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Chrome.
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	Border     lipgloss.Style
}

// NewStyles builds styles from a theme. A nil theme gets the default
// palette.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	text := lipgloss.NewStyle().Foreground(theme.Foreground)
	muted := lipgloss.NewStyle().Foreground(theme.Muted)
	framed := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		Normal:   text,
		Muted:    muted,
		Selected: text.Bold(true).Background(theme.Primary),

		Error:   lipgloss.NewStyle().Foreground(theme.Error),
		Success: lipgloss.NewStyle().Foreground(theme.Success),
		Warning: lipgloss.NewStyle().Foreground(theme.Warning),

		InputField: framed.Padding(0, 1),
		StatusBar: muted.
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),
		Help:   muted,
		Border: framed,
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette these styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
