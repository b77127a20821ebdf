// Command cinematch is a movie recommendation CLI.
// It wires the driven adapters (CSV corpus, SQLite snapshot store, TOML
// config, TMDB posters) to the core services and hands them to the CLI.
package main

import (
	"fmt"
	"os"

	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driven/config/file"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driven/corpus/csvfile"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driven/poster/tmdb"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driven/storage/sqlite"
	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driving/cli"
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driven"
	"github.com/cinematch-labs/cinematch-cli/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

// defaultCorpusPath is used when no corpus path is configured.
const defaultCorpusPath = "movies.csv"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("config store: %w", err)
	}

	corpusPath := configStore.GetString("corpus.path")
	if corpusPath == "" {
		corpusPath = defaultCorpusPath
	}
	source := csvfile.NewSource(corpusPath)

	snapshots, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("snapshot store: %w", err)
	}
	defer snapshots.Close()

	corpusService := services.NewCorpusService(source, snapshots)

	// Poster lookup is optional: only wired when an API key is configured.
	var posters driven.PosterProvider
	if apiKey := configStore.GetString("tmdb.api_key"); apiKey != "" {
		posters = tmdb.NewProvider(apiKey)
	}

	recommendService := services.NewRecommendService(corpusService, posters)

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Recommend: recommendService,
		Corpus:    corpusService,
		Config:    configStore,
	})
	cli.SetTUIConfig(&cli.TUIConfig{CorpusPath: corpusPath})

	return cli.Execute()
}
