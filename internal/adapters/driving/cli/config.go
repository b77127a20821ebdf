package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CineMatch configuration",
	Long: `View and change configuration values stored in the config file.

Use subcommands to inspect the current configuration, set individual
values, or store the TMDB API key without echoing it to the terminal.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value by dotted key, for example:

  cinematch config set corpus.path ./movies.csv
  cinematch config set recommend.count 5`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the TMDB API key",
	Long:  `Prompts for the TMDB API key without echoing it and saves it to the config file.`,
	RunE:  runConfigSetKey,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[Corpus]")
	if path := configStore.GetString("corpus.path"); path != "" {
		cmd.Printf("  Path: %s\n", path)
	} else {
		cmd.Printf("  Path: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Recommend]")
	if n := configStore.GetInt("recommend.count"); n > 0 {
		cmd.Printf("  Count: %d\n", n)
	} else {
		cmd.Printf("  Count: %d (default)\n", defaultCount)
	}
	cmd.Println()

	cmd.Println("[TMDB]")
	if key := configStore.GetString("tmdb.api_key"); key != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(key))
	} else {
		cmd.Printf("  API Key: (not set)\n")
		cmd.Println("  Run 'cinematch config set-key' to enable poster lookup.")
	}
	cmd.Println()

	cmd.Printf("Config file: %s\n", configStore.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := strings.TrimSpace(args[0])
	if key == "" {
		return errors.New("config key must not be empty")
	}

	if err := configStore.Set(key, args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigSetKey(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Print("Enter TMDB API key: ")
	key := readPassword()
	cmd.Println()
	if key == "" {
		return errors.New("API key must not be empty")
	}

	if err := configStore.Set("tmdb.api_key", key); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}

	cmd.Printf("Saved TMDB API key %s\n", maskAPIKey(key))
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read without echo first
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
