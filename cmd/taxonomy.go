package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"hirs/internal/bootstrap"
	"hirs/internal/bootstrap/logging"
	"hirs/internal/errs"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Show the active reporting taxonomy",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		app, err := bootstrap.New(ctx, cfgFile)
		if err != nil {
			logging.Error(ctx, "bootstrap failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "bootstrap application")
		}

		out := cmd.OutOrStdout()
		for _, category := range app.Taxonomy.Categories {
			fmt.Fprintln(out, category.Name)
			for _, sub := range category.Subcategories {
				fmt.Fprintf(out, "  - %s\n", sub)
			}
		}
		fmt.Fprintf(out, "tags: %v\n", app.Taxonomy.Tags)
		fmt.Fprintf(out, "stations: %v\n", app.Taxonomy.Stations)
		if _, err := fmt.Fprintf(out, "departments: %v\n", app.Taxonomy.Departments); err != nil {
			return errs.Wrap(err, "write taxonomy output")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)
}
