package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
)

// defaultCount is used when neither the flag nor the config sets one.
const defaultCount = 10

var (
	recommendCount   int
	recommendJSON    bool
	recommendPosters bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [title]",
	Short: "Recommend movies similar to a title",
	Long: `Ranks every movie in the corpus by similarity to the given title and
prints the top matches. Similarity is cosine similarity over TF-IDF vectors
of the combined genres, keywords, and overview text.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendCount, "count", "n", 0,
		"number of recommendations (default from config, then 10)")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output results as JSON")
	recommendCmd.Flags().BoolVar(&recommendPosters, "posters", false, "resolve poster URLs via TMDB")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	title := args[0]

	if recommendService == nil {
		return errors.New("recommend service not configured")
	}

	opts := domain.RecommendOptions{
		Count:   effectiveCount(),
		Posters: recommendPosters,
	}

	results, err := recommendService.Recommend(context.Background(), title, opts)
	if err != nil {
		if errors.Is(err, domain.ErrTitleNotFound) {
			return fmt.Errorf("%q is not in the corpus (try: cinematch titles %q)", title, title)
		}
		return fmt.Errorf("recommend failed: %w", err)
	}

	if recommendJSON {
		return outputRecommendJSON(cmd, results)
	}

	return outputRecommendTable(cmd, title, results)
}

// effectiveCount resolves the count: flag, then config, then default.
func effectiveCount() int {
	if recommendCount > 0 {
		return recommendCount
	}
	if configStore != nil {
		if n := configStore.GetInt("recommend.count"); n > 0 {
			return n
		}
	}
	return defaultCount
}

// recommendRow is the JSON shape of a single recommendation.
type recommendRow struct {
	MovieID   int     `json:"movie_id"`
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
	PosterURL string  `json:"poster_url,omitempty"`
}

func outputRecommendJSON(cmd *cobra.Command, results []domain.Recommendation) error {
	rows := make([]recommendRow, len(results))
	for i, r := range results {
		rows[i] = recommendRow{
			MovieID:   r.Movie.ID,
			Title:     r.Movie.Title,
			Score:     r.Score,
			PosterURL: r.PosterURL,
		}
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecommendTable(cmd *cobra.Command, title string, results []domain.Recommendation) error {
	if len(results) == 0 {
		cmd.Println("No recommendations.")
		return nil
	}

	cmd.Printf("Because you liked %s:\n", title)
	cmd.Println()
	for i, r := range results {
		cmd.Printf("  [%d] %s (%.3f)\n", i+1, r.Movie.Title, r.Score)
		if r.PosterURL != "" {
			cmd.Printf("      Poster: %s\n", r.PosterURL)
		}
	}
	cmd.Println()

	return nil
}
