// Package cmd implements the quill command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quillnotes/quill/internal/config"
	"github.com/quillnotes/quill/internal/editor"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "AI writing assistant for plain-text documents",
	Long: `quill routes document text to a configured AI provider (OpenAI,
Venice, Anthropic, or Ollama) and inserts the generated result back into
the document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the user config dir)")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func loadConfig() (config.Config, error) {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// parseLines parses a "start:end" 1-based inclusive line range.
func parseLines(s string) (*editor.Selection, error) {
	if s == "" {
		return nil, nil
	}
	start, end, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("invalid line range %q, expected start:end", s)
	}
	a, err := strconv.Atoi(start)
	if err != nil {
		return nil, fmt.Errorf("invalid line range %q: %w", s, err)
	}
	b, err := strconv.Atoi(end)
	if err != nil {
		return nil, fmt.Errorf("invalid line range %q: %w", s, err)
	}
	return &editor.Selection{Start: a, End: b}, nil
}
