// Package results provides the recommendation results view for the TUI.
package results

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/components/list"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/components/status"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/keymap"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/messages"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/styles"
	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
)

// View displays ranked recommendations for a picked title.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.RecommendationList
	statusbar *status.Bar

	title string

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new results view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		list:      list.NewRecommendationList(s),
		statusbar: status.NewBar(s, km),
		width:     80,
		height:    24,
		ready:     false,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RecommendCompleted:
		v.SetRecommendations(msg.Title, msg.Results, msg.Err)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewPicker}
		}
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "n":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewPicker}
		}
	case "q":
		return v, func() tea.Msg { return messages.Quit{} }
	}

	return v, nil
}

// SetRecommendations installs a new result set on the view.
func (v *View) SetRecommendations(title string, results []domain.Recommendation, err error) {
	v.title = title
	if err != nil {
		v.err = err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(err.Error())
		return
	}

	v.err = nil
	v.list.SetResults(results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetResultCount(len(results))
}

// View renders the results view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("CineMatch")
	sections = append(sections, header, "")

	if v.title != "" {
		because := v.styles.Subtitle.Render("Because you liked " + v.title + ":")
		sections = append(sections, because, "")
	}

	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	sections = append(sections, v.list.View())

	sections = append(sections, "")
	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.list.SetDimensions(width, height-8) // Reserve space for header and status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Title returns the title the recommendations were computed for.
func (v *View) Title() string {
	return v.title
}

// Results returns the current recommendations.
func (v *View) Results() []domain.Recommendation {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected recommendation.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedResult returns the currently selected recommendation.
func (v *View) SelectedResult() *domain.Recommendation {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
