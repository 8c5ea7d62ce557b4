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

var triageCmd = &cobra.Command{
	Use:   "triage",
	Short: "Assess risk and move reports through the workflow",
}

var triageAssessCmd = &cobra.Command{
	Use:   "assess <hazard-id>",
	Short: "Record a likelihood x severity assessment",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		likelihood, _ := cmd.Flags().GetInt("likelihood")
		severity, _ := cmd.Flags().GetInt("severity")

		result, err := svc.AssessRisk(ctx, usecasehazard.AssessRiskInput{
			HazardID:   cmd.Flags().Arg(0),
			Likelihood: likelihood,
			Severity:   severity,
			Role:       actorRole,
		})
		if err != nil {
			logging.Error(ctx, "risk assessment failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "assess risk")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "risk: %s (score %d)\n", result.Level, result.Score)
		fmt.Fprintf(out, "response: %s\n", result.Escalation.Response)
		if result.Escalation.StopContain {
			fmt.Fprintln(out, "stop/contain acknowledgement expected before proceeding")
		}
		for _, advisory := range result.Advisories {
			fmt.Fprintf(out, "advisory: %s\n", advisory)
		}
		return nil
	}),
}

var triageStatusCmd = &cobra.Command{
	Use:   "status <hazard-id> <status>",
	Short: "Move a report to a new workflow status",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		h, err := svc.UpdateStatus(ctx, usecasehazard.UpdateStatusInput{
			HazardID: cmd.Flags().Arg(0),
			Status:   cmd.Flags().Arg(1),
			Role:     actorRole,
		})
		if err != nil {
			logging.Error(ctx, "status update failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "update status")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s status=%s\n", h.ID, h.Status); err != nil {
			return errs.Wrap(err, "write status output")
		}
		return nil
	}),
}

var triageRejectCmd = &cobra.Command{
	Use:   "reject <hazard-id>",
	Short: "Reject a report with a documented reason",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		reason, _ := cmd.Flags().GetString("reason")
		confirmed, _ := cmd.Flags().GetBool("confirm")

		h, err := svc.Reject(ctx, usecasehazard.RejectInput{
			HazardID:  cmd.Flags().Arg(0),
			Reason:    reason,
			Confirmed: confirmed,
			Role:      actorRole,
		})
		if err != nil {
			logging.Error(ctx, "rejection failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "reject hazard")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s rejected: %s\n", h.ID, h.RejectionReason); err != nil {
			return errs.Wrap(err, "write reject output")
		}
		return nil
	}),
}

var triageFeedbackCmd = &cobra.Command{
	Use:   "feedback <hazard-id>",
	Short: "Record feedback shown to the reporter",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		text, _ := cmd.Flags().GetString("text")
		h, err := svc.SetFeedback(ctx, usecasehazard.SetFeedbackInput{
			HazardID: cmd.Flags().Arg(0),
			Feedback: text,
			Role:     actorRole,
		})
		if err != nil {
			logging.Error(ctx, "feedback update failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "set feedback")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s feedback recorded\n", h.ID); err != nil {
			return errs.Wrap(err, "write feedback output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(triageCmd)
	triageCmd.AddCommand(triageAssessCmd)
	triageCmd.AddCommand(triageStatusCmd)
	triageCmd.AddCommand(triageRejectCmd)
	triageCmd.AddCommand(triageFeedbackCmd)

	triageAssessCmd.Flags().Int("likelihood", 0, "Likelihood 1-5")
	triageAssessCmd.Flags().Int("severity", 0, "Severity 1-5")

	triageRejectCmd.Flags().String("reason", "", "Rejection reason")
	triageRejectCmd.Flags().Bool("confirm", false, "Confirm the rejection")

	triageFeedbackCmd.Flags().String("text", "", "Feedback text")
}
