package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a schedule file (plan, stages, elements, capacities)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportPlan(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			app.Timeline.Invalidate()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported plan %s\n", formatter.StyleBold.Render(result.Plan.Name))
			fmt.Fprintf(out, "  %d stages, %d elements, %d capacities, %d completions\n",
				result.StageCount, result.ElementCount, result.CapacityCount, result.CompletionCount)
			if len(result.Dropped) > 0 {
				fmt.Fprintln(out, formatter.StyleYellow.Render(
					fmt.Sprintf("  %d malformed records dropped:", len(result.Dropped))))
				for _, d := range result.Dropped {
					fmt.Fprintf(out, "    - %s\n", d)
				}
			}
			return nil
		},
	}
}
