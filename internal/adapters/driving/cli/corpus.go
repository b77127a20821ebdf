package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect and refresh the movie corpus",
	RunE:  runCorpusInfo,
}

var corpusInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show corpus source, size, and cache state",
	RunE:  runCorpusInfo,
}

var corpusRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-read the corpus from its source",
	Long: `Forces a re-read of the corpus CSV, rewrites the local snapshot, and
drops the cached similarity matrix so the next recommendation recomputes it.`,
	RunE: runCorpusRefresh,
}

func init() {
	corpusCmd.AddCommand(corpusInfoCmd)
	corpusCmd.AddCommand(corpusRefreshCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusInfo(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	info, err := corpusService.Info(context.Background())
	if err != nil {
		return fmt.Errorf("corpus info: %w", err)
	}

	cmd.Printf("Source:      %s\n", info.Path)
	cmd.Printf("Movies:      %d\n", info.MovieCount)
	cmd.Printf("Fingerprint: %s\n", info.Fingerprint)
	if info.FromSnapshot {
		cmd.Println("Loaded from: snapshot cache")
	} else {
		cmd.Println("Loaded from: source")
	}
	return nil
}

func runCorpusRefresh(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	if err := corpusService.Refresh(context.Background()); err != nil {
		return fmt.Errorf("corpus refresh: %w", err)
	}
	if recommendService != nil {
		recommendService.Invalidate()
	}

	info, err := corpusService.Info(context.Background())
	if err != nil {
		return fmt.Errorf("corpus info: %w", err)
	}
	cmd.Printf("Corpus refreshed: %d movies from %s\n", info.MovieCount, info.Path)
	return nil
}
