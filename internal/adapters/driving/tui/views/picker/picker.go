// Package picker provides the title picking view for the TUI.
package picker

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/components/input"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/components/status"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/keymap"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/messages"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/styles"
	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driving"
)

// maxSuggestions bounds how many title suggestions are shown under the input.
const maxSuggestions = 8

// View represents the title picker with input, suggestions, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.TitleInput
	statusbar *status.Bar

	recommendService driving.RecommendService
	corpusService    driving.CorpusService
	ctx              context.Context

	titles      []string
	suggestions []string
	selected    int

	count   int
	posters bool

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new picker view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	recommendService driving.RecommendService,
	corpusService driving.CorpusService,
	count int,
	posters bool,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if count < 1 {
		count = 1
	}

	return &View{
		styles:           s,
		keymap:           km,
		input:            input.NewTitleInput(s),
		statusbar:        status.NewBar(s, km),
		recommendService: recommendService,
		corpusService:    corpusService,
		ctx:              context.Background(),
		count:            count,
		posters:          posters,
		width:            80,
		height:           24,
		ready:            false,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads corpus titles for suggestions.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.loadTitles())
}

// Update handles messages for the picker view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.TitlesLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.titles = msg.Titles
		v.refreshSuggestions()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		return v, func() tea.Msg { return messages.Quit{} }

	case tea.KeyEnter:
		title := strings.TrimSpace(v.input.Value())
		if title == "" {
			return v, nil
		}
		v.err = nil
		v.statusbar.SetState(status.StateRanking)
		return v, v.performRecommend(title)

	case tea.KeyTab:
		if s := v.selectedSuggestion(); s != "" {
			v.input.SetValue(s)
			v.refreshSuggestions()
		}
		return v, nil

	case tea.KeyUp:
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case tea.KeyDown:
		if v.selected < len(v.suggestions)-1 {
			v.selected++
		}
		return v, nil
	}

	switch msg.String() {
	case "+":
		v.count++
		v.statusbar.SetMessage(v.countLabel())
		return v, nil
	case "-":
		if v.count > 1 {
			v.count--
		}
		v.statusbar.SetMessage(v.countLabel())
		return v, nil
	}

	// Everything else is typing: forward to the input and refilter.
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.refreshSuggestions()
	return v, cmd
}

// performRecommend ranks the corpus against the picked title.
func (v *View) performRecommend(title string) tea.Cmd {
	return func() tea.Msg {
		if v.recommendService == nil {
			return messages.ErrorOccurred{Err: ErrNoRecommendService}
		}

		opts := domain.RecommendOptions{Count: v.count, Posters: v.posters}
		results, err := v.recommendService.Recommend(v.ctx, title, opts)
		return messages.RecommendCompleted{Title: title, Results: results, Err: err}
	}
}

// loadTitles fetches the corpus titles for suggestion filtering.
func (v *View) loadTitles() tea.Cmd {
	return func() tea.Msg {
		if v.corpusService == nil {
			return messages.TitlesLoaded{Titles: nil, Err: nil}
		}
		titles, err := v.corpusService.Titles(v.ctx, "")
		return messages.TitlesLoaded{Titles: titles, Err: err}
	}
}

// refreshSuggestions refilters the suggestion list against the input value.
func (v *View) refreshSuggestions() {
	query := strings.ToLower(strings.TrimSpace(v.input.Value()))
	v.suggestions = v.suggestions[:0]
	v.selected = 0

	if query == "" {
		return
	}
	for _, title := range v.titles {
		if strings.Contains(strings.ToLower(title), query) {
			v.suggestions = append(v.suggestions, title)
			if len(v.suggestions) >= maxSuggestions {
				break
			}
		}
	}
}

// selectedSuggestion returns the highlighted suggestion, or "".
func (v *View) selectedSuggestion() string {
	if v.selected < 0 || v.selected >= len(v.suggestions) {
		return ""
	}
	return v.suggestions[v.selected]
}

func (v *View) countLabel() string {
	if v.count == 1 {
		return "1 recommendation"
	}
	return fmt.Sprintf("%d recommendations", v.count)
}

// View renders the picker view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	header := v.styles.Title.Render("CineMatch")
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	sections = append(sections, v.renderSuggestions())

	sections = append(sections, "")
	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSuggestions renders the filtered title suggestions.
func (v *View) renderSuggestions() string {
	if len(v.suggestions) == 0 {
		if strings.TrimSpace(v.input.Value()) == "" {
			return v.styles.Muted.Render("Start typing to see matching titles")
		}
		return v.styles.Muted.Render("No matching titles")
	}

	lines := make([]string, 0, len(v.suggestions))
	for i, title := range v.suggestions {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}
		if i == v.selected {
			lines = append(lines, v.styles.Selected.Render(indicator+title))
		} else {
			lines = append(lines, v.styles.Normal.Render(indicator+title))
		}
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
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

// Title returns the current input value.
func (v *View) Title() string {
	return v.input.Value()
}

// SetTitle sets the input value.
func (v *View) SetTitle(title string) {
	v.input.SetValue(title)
	v.refreshSuggestions()
}

// Count returns the current recommendation count.
func (v *View) Count() int {
	return v.count
}

// Suggestions returns the current suggestion list.
func (v *View) Suggestions() []string {
	return v.suggestions
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to a fresh input.
func (v *View) Reset() {
	v.input.Focus()
	v.input.SetValue("")
	v.suggestions = nil
	v.selected = 0
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// SetTitles replaces the cached corpus titles, e.g. after a corpus reload.
func (v *View) SetTitles(titles []string) {
	v.titles = titles
	v.refreshSuggestions()
}
