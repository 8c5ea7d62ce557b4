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

var capaCmd = &cobra.Command{
	Use:   "capa",
	Short: "Manage corrective and preventive actions",
}

var capaAddCmd = &cobra.Command{
	Use:   "add <hazard-id>",
	Short: "Add a CAPA action to a report",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		title, _ := cmd.Flags().GetString("title")
		actionType, _ := cmd.Flags().GetString("type")
		owner, _ := cmd.Flags().GetString("owner")
		department, _ := cmd.Flags().GetString("department")
		priority, _ := cmd.Flags().GetString("priority")
		evidence, _ := cmd.Flags().GetString("evidence")
		due, err := parseDateFlag(cmd, "due")
		if err != nil {
			return err
		}

		action, err := svc.AddAction(ctx, usecasehazard.AddActionInput{
			HazardID:         cmd.Flags().Arg(0),
			Title:            title,
			Type:             actionType,
			Owner:            owner,
			Department:       department,
			Priority:         priority,
			DueDate:          due,
			RequiredEvidence: evidence,
			Role:             actorRole,
		})
		if err != nil {
			logging.Error(ctx, "add action failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "add action")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "added action: %s\n", action.ID); err != nil {
			return errs.Wrap(err, "write add output")
		}
		return nil
	}),
}

var capaCompleteCmd = &cobra.Command{
	Use:   "complete <hazard-id> <action-id>",
	Short: "Record completion, verification and effectiveness for an action",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		input := usecasehazard.UpdateActionInput{
			HazardID: cmd.Flags().Arg(0),
			ActionID: cmd.Flags().Arg(1),
			Role:     actorRole,
		}

		if reopen, _ := cmd.Flags().GetBool("reopen"); reopen {
			input.ClearCompletion = true
		} else {
			done, err := parseDateFlag(cmd, "date")
			if err != nil {
				return err
			}
			if done.IsZero() {
				done = time.Now()
			}
			input.CompletionDate = &done
		}
		if cmd.Flags().Changed("verification") {
			v, _ := cmd.Flags().GetString("verification")
			input.Verification = &v
		}
		if cmd.Flags().Changed("effectiveness") {
			e, _ := cmd.Flags().GetString("effectiveness")
			input.Effectiveness = &e
		}

		action, err := svc.UpdateAction(ctx, input)
		if err != nil {
			logging.Error(ctx, "update action failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "update action")
		}

		state := "reopened"
		if action.CompletionDate != nil {
			state = "completed " + action.CompletionDate.Format("2006-01-02")
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "action %s %s\n", action.ID, state); err != nil {
			return errs.Wrap(err, "write complete output")
		}
		return nil
	}),
}

var capaOverdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "List overdue actions across all reports",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *usecasehazard.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		summary, err := svc.Overdue(ctx)
		if err != nil {
			logging.Error(ctx, "overdue listing failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "list overdue actions")
		}

		out := cmd.OutOrStdout()
		for _, item := range summary.Items {
			fmt.Fprintf(out, "%s\t%s\tdue %s\t%d day(s) overdue\t%s\n",
				item.HazardID, item.ActionID, item.DueDate, item.DaysOverdue, item.Title)
		}
		if _, err := fmt.Fprintf(out, "%d overdue action(s)\n", len(summary.Items)); err != nil {
			return errs.Wrap(err, "write overdue output")
		}
		return nil
	}),
}

func parseDateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errs.Wrapf(err, "parse --%s", name)
	}
	return parsed, nil
}

func init() {
	rootCmd.AddCommand(capaCmd)
	capaCmd.AddCommand(capaAddCmd)
	capaCmd.AddCommand(capaCompleteCmd)
	capaCmd.AddCommand(capaOverdueCmd)

	capaAddCmd.Flags().String("title", "", "Action title / description")
	capaAddCmd.Flags().String("type", "", "Immediate, Corrective or Preventive")
	capaAddCmd.Flags().String("owner", "", "Action owner")
	capaAddCmd.Flags().String("department", "", "Owning department")
	capaAddCmd.Flags().String("priority", "", "Low, Medium, High or Critical")
	capaAddCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	capaAddCmd.Flags().String("evidence", "", "Required evidence")

	capaCompleteCmd.Flags().String("date", "", "Completion date (YYYY-MM-DD, default today)")
	capaCompleteCmd.Flags().Bool("reopen", false, "Clear the completion date instead")
	capaCompleteCmd.Flags().String("verification", "", "Verification result")
	capaCompleteCmd.Flags().String("effectiveness", "", "Effectiveness notes")
}
