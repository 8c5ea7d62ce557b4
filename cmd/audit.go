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

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the audit trail",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := svc.AuditTrail(ctx, limit)
		if err != nil {
			logging.Error(ctx, "audit trail failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "read audit trail")
		}

		out := cmd.OutOrStdout()
		for _, entry := range entries {
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n",
				entry.Timestamp.Format("2006-01-02 15:04:05"),
				entry.Role, entry.Action, entry.EntityID, entry.Detail)
		}
		if _, err := fmt.Fprintf(out, "%d entries\n", len(entries)); err != nil {
			return errs.Wrap(err, "write audit output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().Int("limit", 0, "Show only the most recent N entries (0 for all)")
}
