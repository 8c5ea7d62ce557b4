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

var hazardsCmd = &cobra.Command{
	Use:   "hazards",
	Short: "List and inspect hazard reports",
}

var hazardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List hazard reports, newest first",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		risk, _ := cmd.Flags().GetString("risk")
		status, _ := cmd.Flags().GetString("status")
		station, _ := cmd.Flags().GetString("station")
		search, _ := cmd.Flags().GetString("search")

		items, err := svc.ListHazards(ctx, usecasehazard.Filter{
			RiskLevel: risk,
			Status:    status,
			Station:   station,
			Search:    search,
		})
		if err != nil {
			logging.Error(ctx, "list hazards failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "list hazards")
		}

		for _, item := range items {
			if _, err := fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s\t%s\t%s\t%s\t%s\n",
				item.ID, item.Status, item.Risk, item.Station, item.Title,
			); err != nil {
				return errs.Wrap(err, "write list output")
			}
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d report(s)\n", len(items)); err != nil {
			return errs.Wrap(err, "write list output")
		}
		return nil
	}),
}

var hazardsShowCmd = &cobra.Command{
	Use:   "show <hazard-id>",
	Short: "Show one hazard report in full",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		h, err := svc.GetHazard(ctx, cmd.Flags().Arg(0))
		if err != nil {
			logging.Error(ctx, "get hazard failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "get hazard")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s\n", h.ID, h.Title)
		fmt.Fprintf(out, "status: %s  risk: %s\n", h.Status, h.RiskDisplay())
		fmt.Fprintf(out, "category: %s / %s\n", h.Category, h.Subcategory)
		fmt.Fprintf(out, "location: %s %s\n", h.Station, h.Area)
		fmt.Fprintf(out, "reporter: %s\n", h.Reporter.Summary(h.Mode))
		fmt.Fprintf(out, "description: %s\n", h.Description)
		if h.RejectionReason != "" {
			fmt.Fprintf(out, "rejection reason: %s\n", h.RejectionReason)
		}
		if h.ReporterFeedback != "" {
			fmt.Fprintf(out, "feedback: %s\n", h.ReporterFeedback)
		}
		for _, a := range h.Actions {
			done := "open"
			if a.CompletionDate != nil {
				done = "done " + a.CompletionDate.Format("2006-01-02")
			}
			fmt.Fprintf(out, "action %s [%s/%s] %s (%s)\n", a.ID, a.Type, a.Priority, a.Title, done)
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(hazardsCmd)
	hazardsCmd.AddCommand(hazardsListCmd)
	hazardsCmd.AddCommand(hazardsShowCmd)

	hazardsListCmd.Flags().String("risk", "", "Filter by assessed risk level")
	hazardsListCmd.Flags().String("status", "", "Filter by workflow status")
	hazardsListCmd.Flags().String("station", "", "Filter by station")
	hazardsListCmd.Flags().String("search", "", "Search title, area, category, id and description")
}
