package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available from the configured providers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		if len(app.clients) == 0 {
			return fmt.Errorf("no providers configured; set an API key in the config file or environment")
		}

		names := make([]string, 0, len(app.clients))
		for name := range app.clients {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			models, err := app.clients[name].ListModels(cmd.Context())
			if err != nil {
				app.Log.Warn("model listing failed", "provider", name, "err", err)
				app.Notifier.Warn("could not list models for " + name)
				continue
			}
			for _, m := range models {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, m.ID)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
