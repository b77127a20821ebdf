package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/tui/messages"
	"github.com/cinematch-labs/cinematch-cli/internal/logger"
	"github.com/cinematch-labs/cinematch-cli/internal/watcher"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	// CorpusPath is the corpus CSV path to watch for changes. Empty
	// disables the watcher.
	CorpusPath string
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

var tuiPosters bool

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for CineMatch.

Type a movie title, pick it from the suggestions, and browse ranked
recommendations with keyboard navigation. Edits to the corpus CSV are
picked up live.

Controls:
  (type)   - Filter corpus titles
  ↑/k, ↓/j - Navigate
  tab      - Pick highlighted suggestion
  +/-      - Adjust recommendation count
  Enter    - Recommend
  Esc      - Back / Quit
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiPosters, "posters", false, "resolve poster URLs via TMDB")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if recommendService == nil || corpusService == nil {
		return errors.New("services not configured")
	}

	ports := tui.NewPorts(recommendService, corpusService)
	opts := tui.Options{
		Count:   effectiveCount(),
		Posters: tuiPosters,
	}

	app, err := tui.NewApp(ports, opts)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Watch the corpus file while the TUI runs so on-disk edits show up
	// without a restart.
	if tuiConfig != nil && tuiConfig.CorpusPath != "" {
		watchCtx, watchCancel := context.WithCancel(context.Background())
		defer watchCancel()

		w, err := watcher.New(tuiConfig.CorpusPath, func() {
			ctx := context.Background()
			if err := corpusService.Refresh(ctx); err != nil {
				p.Send(messages.ErrorOccurred{Err: err})
				return
			}
			recommendService.Invalidate()
			info, err := corpusService.Info(ctx)
			if err != nil {
				p.Send(messages.ErrorOccurred{Err: err})
				return
			}
			p.Send(messages.CorpusChanged{MovieCount: info.MovieCount})
		})
		if err != nil {
			logger.Warn("corpus watcher unavailable: %v", err)
		} else {
			defer w.Close()
			go func() { _ = w.Start(watchCtx) }()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
