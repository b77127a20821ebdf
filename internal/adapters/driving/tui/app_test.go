package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/messages"
	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
)

func newTestPorts() *Ports {
	return &Ports{
		Recommend: &MockRecommendService{},
		Corpus: &MockCorpusService{
			MovieList: []domain.Movie{
				{ID: 1, Title: "Alien"},
				{ID: 2, Title: "Aliens"},
			},
		},
	}
}

func TestNewApp_Success(t *testing.T) {
	ports := newTestPorts()

	app, err := NewApp(ports, Options{Count: 10})

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewPicker, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := &Ports{
		Recommend: nil,
		Corpus:    &MockCorpusService{},
	}

	app, err := NewApp(ports, Options{Count: 10})

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})

	cmd := app.Init()

	// Init returns a batch command
	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_CtrlCQuits(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})
	app.SetDimensions(80, 24)

	msg := tea.KeyMsg{Type: tea.KeyCtrlC}
	_, cmd := app.Update(msg)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_RecommendCompletedSwitchesToResults(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})
	app.SetDimensions(80, 24)

	results := []domain.Recommendation{
		{Movie: domain.Movie{ID: 2, Title: "Aliens"}, Score: 0.9},
	}
	msg := messages.RecommendCompleted{Title: "Alien", Results: results}
	model, _ := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Equal(t, messages.ViewResults, app.CurrentView())
	assert.Len(t, app.Results(), 1)
}

func TestApp_Update_RecommendCompletedErrorStaysOnPicker(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})
	app.SetDimensions(80, 24)

	msg := messages.RecommendCompleted{Title: "Unknown", Err: domain.ErrTitleNotFound}
	app.Update(msg)

	assert.Equal(t, messages.ViewPicker, app.CurrentView())
	assert.Error(t, app.Err())
}

func TestApp_Update_ViewChangedToPickerResets(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})
	app.SetDimensions(80, 24)

	// Move to results first
	app.Update(messages.RecommendCompleted{Title: "Alien", Results: nil})
	require.Equal(t, messages.ViewResults, app.CurrentView())

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewPicker})

	assert.Equal(t, messages.ViewPicker, app.CurrentView())
	assert.NotNil(t, cmd)
}

func TestApp_Update_CorpusChangedReturnsToPicker(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})
	app.SetDimensions(80, 24)

	app.Update(messages.RecommendCompleted{Title: "Alien", Results: nil})
	_, cmd := app.Update(messages.CorpusChanged{MovieCount: 5})

	assert.Equal(t, messages.ViewPicker, app.CurrentView())
	assert.NotNil(t, cmd)
}

func TestApp_Update_QuitMessage(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})
	app.SetDimensions(80, 24)

	boom := errors.New("boom")
	app.Update(messages.ErrorOccurred{Err: boom})

	assert.Equal(t, boom, app.Err())
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_View_PickerAfterResize(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})
	app.SetDimensions(80, 24)

	view := app.View()

	assert.Contains(t, view, "CineMatch")
	assert.Contains(t, view, "Title:")
}

func TestApp_View_Help(t *testing.T) {
	app, _ := NewApp(newTestPorts(), Options{Count: 10})
	app.SetDimensions(80, 24)
	app.Update(messages.RecommendCompleted{Title: "Alien", Results: nil})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})

	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Help")

	// Esc returns to results
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewResults, app.CurrentView())
}
