package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"hirs/internal/bootstrap"
	"hirs/internal/bootstrap/logging"
	"hirs/internal/errs"
	usecasehazard "hirs/internal/usecase/hazard"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demonstration reports",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		added, err := svc.SeedSampleData(ctx, actorRole)
		if err != nil {
			logging.Error(ctx, "sample load failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "load sample data")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "loaded %d sample report(s)\n", added); err != nil {
			return errs.Wrap(err, "write seed output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
