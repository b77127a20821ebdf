// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/styles"
	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
)

// RecommendationList displays ranked recommendations in a navigable list.
type RecommendationList struct {
	results  []domain.Recommendation
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRecommendationList creates a new recommendation list component.
func NewRecommendationList(s *styles.Styles) *RecommendationList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecommendationList{
		results:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the recommendation list.
func (r *RecommendationList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecommendationList) Update(msg tea.Msg) (*RecommendationList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the recommendation list.
func (r *RecommendationList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No recommendations")
	}

	lines := make([]string, 0, len(r.results)*2+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Recommendations (%d)", len(r.results)))
	lines = append(lines, header, "")

	// Each recommendation takes up to 2 lines (title + optional poster)
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.results) {
		end = len(r.results)
	}

	for i := start; i < end; i++ {
		line := r.renderRecommendation(i, &r.results[i])
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderRecommendation formats a single recommendation with its score.
func (r *RecommendationList) renderRecommendation(index int, rec *domain.Recommendation) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := rec.Movie.Title
	if title == "" {
		title = "(Untitled)"
	}

	maxTitleLen := r.width - 20
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	score := fmt.Sprintf("%.3f", rec.Score)

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, score))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			r.styles.Muted.Render(score)
	}

	if rec.PosterURL == "" {
		return titleLine
	}

	poster := rec.PosterURL
	maxPosterLen := r.width - 6
	if maxPosterLen < 20 {
		maxPosterLen = 20
	}
	if len(poster) > maxPosterLen {
		poster = poster[:maxPosterLen-3] + "..."
	}

	return titleLine + "\n" + r.styles.Muted.Render("    "+poster)
}

// SetResults updates the recommendation list.
func (r *RecommendationList) SetResults(results []domain.Recommendation) {
	r.results = results
	r.selected = 0
}

// Results returns the current recommendations.
func (r *RecommendationList) Results() []domain.Recommendation {
	return r.results
}

// Selected returns the index of the selected recommendation.
func (r *RecommendationList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *RecommendationList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected recommendation, or nil if none.
func (r *RecommendationList) SelectedResult() *domain.Recommendation {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *RecommendationList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RecommendationList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecommendationList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *RecommendationList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *RecommendationList) Height() int {
	return r.height
}

// Count returns the number of recommendations.
func (r *RecommendationList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *RecommendationList) IsEmpty() bool {
	return len(r.results) == 0
}
