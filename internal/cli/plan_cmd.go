package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage plans",
	}
	cmd.AddCommand(
		newPlanCreateCmd(app),
		newPlanListCmd(app),
		newPlanDeleteCmd(app),
	)
	return cmd
}

func newPlanCreateCmd(app *App) *cobra.Command {
	var startStr, endStr string
	var ceiling int

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a plan covering a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(domain.DateLayout, startStr)
			if err != nil {
				return fmt.Errorf("invalid --start %q (expected YYYY-MM-DD)", startStr)
			}
			end, err := time.Parse(domain.DateLayout, endStr)
			if err != nil {
				return fmt.Errorf("invalid --end %q (expected YYYY-MM-DD)", endStr)
			}

			p := &domain.Plan{
				Name:            args[0],
				StartDate:       start,
				EndDate:         end,
				CapacityCeiling: ceiling,
			}
			if err := app.Plans.Create(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created plan %s (%s .. %s)\n",
				formatter.StyleBold.Render(p.Name), startStr, endStr)
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&ceiling, "ceiling", 0, "capacity ceiling per day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleDim.Render("no plans"))
				return nil
			}
			for _, p := range plans {
				days := domain.DaysBetween(p.StartDate, p.EndDate) + 1
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s .. %s  (%d days)  %s\n",
					formatter.StyleBold.Render(p.Name),
					p.StartDate.Format(domain.DateLayout),
					p.EndDate.Format(domain.DateLayout),
					days,
					formatter.StyleDim.Render(p.ID))
			}
			return nil
		},
	}
}

func newPlanDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <plan>",
		Short: "Delete a plan and all its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlan(cmd, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.Delete(cmd.Context(), id); err != nil {
				return err
			}
			app.Timeline.Invalidate()
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}
