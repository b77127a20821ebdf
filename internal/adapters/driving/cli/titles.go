package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var titlesCmd = &cobra.Command{
	Use:   "titles [filter]",
	Short: "List corpus titles",
	Long: `Lists the titles in the loaded corpus, in corpus order.
An optional filter narrows the list to titles containing the given
substring (case-insensitive).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTitles,
}

func init() {
	rootCmd.AddCommand(titlesCmd)
}

func runTitles(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}

	titles, err := corpusService.Titles(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("list titles: %w", err)
	}

	if len(titles) == 0 {
		if filter != "" {
			cmd.Printf("No titles matching %q.\n", filter)
		} else {
			cmd.Println("Corpus is empty.")
		}
		return nil
	}

	for _, title := range titles {
		cmd.Println(title)
	}
	return nil
}
