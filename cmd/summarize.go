package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillnotes/quill/internal/editor"
)

var summarizeLines string

var summarizeCmd = &cobra.Command{
	Use:   "summarize FILE",
	Short: "Summarize selected text into a structured Markdown summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		sel, err := parseLines(summarizeLines)
		if err != nil {
			return err
		}
		doc, err := editor.Open(args[0], sel)
		if err != nil {
			return err
		}
		text, ok := doc.SelectedText()
		if !ok {
			app.Notifier.Info("select text to summarize with --lines")
			return fmt.Errorf("no selection")
		}
		summarizer, err := app.summarizer()
		if err != nil {
			app.Notifier.Info(err.Error())
			return err
		}
		return runOp(cmd.Context(), doc, app.Notifier, text, summarizer.Summarize)
	},
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeLines, "lines", "", "line range to summarize (start:end)")
	rootCmd.AddCommand(summarizeCmd)
}
