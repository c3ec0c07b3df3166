package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/planboard/internal/domain"
)

func newCapacityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Manage per-day capacity figures",
	}
	cmd.AddCommand(newCapacitySetCmd(app))
	return cmd
}

func newCapacitySetCmd(app *App) *cobra.Command {
	var date time.Time
	var weather string
	var effective, busy, completed float64

	cmd := &cobra.Command{
		Use:   "set <plan>",
		Short: "Set the capacity figures for one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := resolvePlan(cmd, app, args[0])
			if err != nil {
				return err
			}

			c := &domain.Capacity{
				PlanID:      planID,
				Date:        date,
				Effective:   effective,
				Busy:        busy,
				Completed:   completed,
				WeatherIcon: weather,
			}
			if err := app.Capacities.Set(cmd.Context(), c); err != nil {
				return err
			}
			app.Timeline.Invalidate()
			fmt.Fprintf(cmd.OutOrStdout(), "Capacity for %s: effective %.1f, busy %.1f, completed %.1f\n",
				date.Format(domain.DateLayout), effective, busy, completed)
			return nil
		},
	}

	cmd.Flags().Var(newDateValue(&date), "date", "day to set (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&effective, "effective", 0, "effective capacity for the day")
	cmd.Flags().Float64Var(&busy, "busy", 0, "busy load for the day")
	cmd.Flags().Float64Var(&completed, "completed", 0, "completed load for the day")
	cmd.Flags().StringVar(&weather, "weather", "", "weather icon shown on the day header")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("effective")
	return cmd
}
