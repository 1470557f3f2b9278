package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillnotes/quill/internal/editor"
)

var rewordLines string

var rewordCmd = &cobra.Command{
	Use:   "reword FILE",
	Short: "Reword selected text for grammar and flow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		sel, err := parseLines(rewordLines)
		if err != nil {
			return err
		}
		doc, err := editor.Open(args[0], sel)
		if err != nil {
			return err
		}
		text, ok := doc.SelectedText()
		if !ok {
			app.Notifier.Info("select text to reword with --lines")
			return fmt.Errorf("no selection")
		}
		creator, err := app.creator()
		if err != nil {
			app.Notifier.Info(err.Error())
			return err
		}
		return runOp(cmd.Context(), doc, app.Notifier, text, creator.RewordContent)
	},
}

func init() {
	rewordCmd.Flags().StringVar(&rewordLines, "lines", "", "line range to reword (start:end)")
	rootCmd.AddCommand(rewordCmd)
}
