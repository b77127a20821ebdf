// Package cli implements the cinematch command line interface using cobra.
// Each command file registers itself on rootCmd in its init function.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driven"
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driving"
	"github.com/cinematch-labs/cinematch-cli/internal/logger"
)

// version is set via SetVersion at startup.
var version = "dev"

// Wired services, injected by main through SetServices.
var (
	recommendService driving.RecommendService
	corpusService    driving.CorpusService
	configStore      driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "cinematch",
	Short: "Movie recommendations from your terminal",
	Long: `CineMatch recommends movies similar to a title you pick, ranking the
corpus by TF-IDF cosine similarity over genres, keywords, and overview text.

Point it at a CSV corpus (columns: id, title, genres, keywords, overview),
optionally configure a TMDB API key for poster art, and ask away.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Services holds the wired core services for the CLI.
type Services struct {
	Recommend driving.RecommendService
	Corpus    driving.CorpusService
	Config    driven.ConfigStore
}

// SetServices injects the wired services. Must be called before Execute.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	recommendService = s.Recommend
	corpusService = s.Corpus
	configStore = s.Config
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
