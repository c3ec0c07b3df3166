package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
)

func newDaysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "days <plan>",
		Short: "Print the aggregated day sequence for a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePlan(cmd, app, args[0])
			if err != nil {
				return err
			}
			data, err := app.Timeline.GetTimeline(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderDayTable(data.Days))
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d days, %d rows\n", len(data.Days), len(data.Rows))
			return nil
		},
	}
}
