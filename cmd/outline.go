package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quillnotes/quill/internal/editor"
)

var outlineCmd = &cobra.Command{
	Use:   "outline FILE",
	Short: "Generate a narrative outline from the whole document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		doc, err := editor.Open(args[0], nil)
		if err != nil {
			return err
		}
		creator, err := app.creator()
		if err != nil {
			app.Notifier.Info(err.Error())
			return err
		}
		return runOp(cmd.Context(), doc, app.Notifier, doc.Text(), creator.GenerateOutline)
	},
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}
