// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
)

// TitleChanged is sent when the title input changes.
type TitleChanged struct {
	Title string
}

// RecommendRequested is a command to rank the corpus against a title.
type RecommendRequested struct {
	Title   string
	Options domain.RecommendOptions
}

// RecommendCompleted carries recommendations back to the model.
type RecommendCompleted struct {
	Title   string
	Results []domain.Recommendation
	Err     error
}

// TitlesLoaded carries the corpus titles for the picker.
type TitlesLoaded struct {
	Titles []string
	Err    error
}

// CorpusChanged signals that the corpus source changed on disk and was
// reloaded.
type CorpusChanged struct {
	MovieCount int
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewPicker is the title input and suggestion view.
	ViewPicker ViewType = iota
	// ViewResults is the recommendation list view.
	ViewResults
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewPicker:
		return "picker"
	case ViewResults:
		return "results"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
