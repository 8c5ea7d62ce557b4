package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"hirs/internal/bootstrap"
	"hirs/internal/bootstrap/logging"
	"hirs/internal/errs"
	usecasehazard "hirs/internal/usecase/hazard"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "File a new hazard report",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		title, _ := cmd.Flags().GetString("title")
		category, _ := cmd.Flags().GetString("category")
		subcategory, _ := cmd.Flags().GetString("subcategory")
		station, _ := cmd.Flags().GetString("station")
		area, _ := cmd.Flags().GetString("area")
		description, _ := cmd.Flags().GetString("description")
		classification, _ := cmd.Flags().GetString("classification")
		mode, _ := cmd.Flags().GetString("mode")
		severity, _ := cmd.Flags().GetString("severity")
		tags, _ := cmd.Flags().GetStringSlice("tag")
		draft, _ := cmd.Flags().GetBool("draft")

		if category != "" && !app.Taxonomy.HasCategory(category) {
			logging.Warn(ctx, "category not in taxonomy", slog.String("category", category))
		}

		h, err := svc.CreateHazard(ctx, usecasehazard.CreateHazardInput{
			Title:            title,
			Category:         category,
			Subcategory:      subcategory,
			Station:          station,
			Area:             area,
			ObservedAt:       time.Now(),
			Description:      description,
			Classification:   classification,
			Tags:             tags,
			Mode:             mode,
			ReporterSeverity: severity,
			Draft:            draft,
			Role:             actorRole,
		})
		if err != nil {
			logging.Error(ctx, "create hazard report failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "create hazard report")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "created report: %s status=%s\n", h.ID, h.Status); err != nil {
			return errs.Wrap(err, "write report output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("title", "", "Short title")
	reportCmd.Flags().String("category", "", "Hazard category")
	reportCmd.Flags().String("subcategory", "", "Hazard subcategory")
	reportCmd.Flags().String("station", "", "Station")
	reportCmd.Flags().String("area", "", "Area (stand / gate / bay)")
	reportCmd.Flags().String("description", "", "What happened")
	reportCmd.Flags().String("classification", "", "Hazard, Near miss, Incident, Unsafe act or Unsafe condition")
	reportCmd.Flags().String("mode", "Named", "Reporting mode: Named, Confidential or Anonymous")
	reportCmd.Flags().String("severity", "", "Reporter's perceived severity")
	reportCmd.Flags().StringSlice("tag", nil, "Report tag (repeatable)")
	reportCmd.Flags().Bool("draft", false, "Save as draft instead of submitting")
}
