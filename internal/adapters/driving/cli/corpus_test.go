package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorpusCmd_Use(t *testing.T) {
	assert.Equal(t, "corpus", corpusCmd.Use)
}

func TestCorpusCmd_HasSubcommands(t *testing.T) {
	commands := corpusCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "info")
	assert.Contains(t, commandNames, "refresh")
}

func TestCorpusInfoCmd_ShowsCorpusDetails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"corpus", "info"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Source:")
	assert.Contains(t, buf.String(), "Movies:      3")
	assert.Contains(t, buf.String(), "Fingerprint:")
}

func TestCorpusCmd_DefaultsToInfo(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"corpus"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Movies:      3")
}

func TestCorpusRefreshCmd_ReportsCount(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"corpus", "refresh"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Corpus refreshed: 3 movies")
}

func TestCorpusInfoCmd_ServiceNotConfigured(t *testing.T) {
	oldService := corpusService
	corpusService = nil
	defer func() {
		corpusService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"corpus", "info"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "corpus service not configured")
}
