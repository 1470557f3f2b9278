package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quillnotes/quill/internal/editor"
)

var paragraphLines string

var paragraphCmd = &cobra.Command{
	Use:   "paragraph FILE",
	Short: "Continue the text as a single narrative paragraph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		sel, err := parseLines(paragraphLines)
		if err != nil {
			return err
		}
		doc, err := editor.Open(args[0], sel)
		if err != nil {
			return err
		}
		// Falls back to the whole document when nothing is selected.
		text, ok := doc.SelectedText()
		if !ok {
			text = doc.Text()
		}
		creator, err := app.creator()
		if err != nil {
			app.Notifier.Info(err.Error())
			return err
		}
		return runOp(cmd.Context(), doc, app.Notifier, text, creator.GenerateParagraph)
	},
}

func init() {
	paragraphCmd.Flags().StringVar(&paragraphLines, "lines", "", "line range to continue (start:end)")
	rootCmd.AddCommand(paragraphCmd)
}
