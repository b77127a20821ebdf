package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/keymap"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/messages"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/styles"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/views/picker"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/views/results"
	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
)

// Options configures the TUI application.
type Options struct {
	// Count is the number of recommendations per pick.
	Count int

	// Posters enables TMDB poster URL lookup on results.
	Posters bool
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// pickerView is the title input and suggestion view.
	pickerView *picker.View

	// resultsView is the recommendation list view.
	resultsView *results.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts Options) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	pickerView := picker.NewView(s, km, ports.Recommend, ports.Corpus, opts.Count, opts.Posters)
	resultsView := results.NewView(s, km)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		pickerView:  pickerView,
		resultsView: resultsView,
		currentView: messages.ViewPicker, // Start with the title picker
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.pickerView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("cinematch - Movie Recommendations"),
		a.pickerView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.pickerView.SetDimensions(msg.Width, msg.Height)
		a.resultsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewPicker:
			a.pickerView, cmd = a.pickerView.Update(msg)
			a.err = a.pickerView.Err()
			return a, cmd

		case messages.ViewResults:
			if msg.String() == "?" {
				a.currentView = messages.ViewHelp
				return a, nil
			}
			a.resultsView, cmd = a.resultsView.Update(msg)
			a.err = a.resultsView.Err()
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes back to results
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewResults
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.RecommendCompleted:
		if msg.Err != nil {
			// Stay on the picker and surface the error there
			a.err = msg.Err
			a.pickerView, cmd = a.pickerView.Update(messages.ErrorOccurred{Err: msg.Err})
			return a, cmd
		}
		a.err = nil
		a.resultsView.SetRecommendations(msg.Title, msg.Results, nil)
		a.currentView = messages.ViewResults
		return a, nil

	case messages.TitlesLoaded:
		a.pickerView, cmd = a.pickerView.Update(msg)
		return a, cmd

	case messages.CorpusChanged:
		// Reload the suggestion titles after an on-disk corpus change
		a.pickerView.Reset()
		a.currentView = messages.ViewPicker
		return a, a.pickerView.Init()

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewPicker {
			a.pickerView.Reset()
			return a, a.pickerView.Init()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewPicker:
			a.pickerView, cmd = a.pickerView.Update(msg)
		case messages.ViewResults:
			a.resultsView, cmd = a.resultsView.Update(msg)
		case messages.ViewHelp:
			// Help view doesn't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewPicker:
		a.pickerView, cmd = a.pickerView.Update(msg)
	case messages.ViewResults:
		a.resultsView, cmd = a.resultsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewPicker:
		return a.pickerView.View()
	case messages.ViewResults:
		return a.resultsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.pickerView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Picker:
  (type)      Filter corpus titles
  ↑/↓         Navigate suggestions
  tab         Pick highlighted suggestion
  +/-         Adjust recommendation count
  enter       Recommend

Results:
  j/k, ↑/↓    Navigate recommendations
  n           New pick
  q           Quit

[esc] back to results`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Results returns the recommendations shown in the results view.
func (a *App) Results() []domain.Recommendation {
	return a.resultsView.Results()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.pickerView.SetDimensions(width, height)
	a.resultsView.SetDimensions(width, height)
}
