package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/domain"
)

func newElementCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "element",
		Short: "Manage elements",
	}
	cmd.AddCommand(
		newElementAddCmd(app),
		newElementListCmd(app),
		newElementStatusCmd(app),
	)
	return cmd
}

func newElementListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <plan>",
		Short: "List a plan's elements with progress and status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := resolvePlan(cmd, app, args[0])
			if err != nil {
				return err
			}
			elements, err := app.Elements.ListByPlan(cmd.Context(), planID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderElementTable(elements))
			return nil
		},
	}
}

func newElementAddCmd(app *App) *cobra.Command {
	var label, kind, dateStr, endStr, stageID string

	cmd := &cobra.Command{
		Use:   "add <plan>",
		Short: "Add an element; prompts interactively when flags are omitted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := resolvePlan(cmd, app, args[0])
			if err != nil {
				return err
			}

			if label == "" || dateStr == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--label and --date are required in non-interactive mode")
				}
				if err := runElementForm(&label, &kind, &dateStr, &endStr); err != nil {
					return err
				}
			}

			date, err := time.Parse(domain.DateLayout, dateStr)
			if err != nil {
				return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", dateStr)
			}
			e := &domain.Element{
				PlanID: planID,
				Label:  label,
				Kind:   domain.ElementKind(kind),
				Date:   date,
			}
			if endStr != "" {
				end, err := time.Parse(domain.DateLayout, endStr)
				if err != nil {
					return fmt.Errorf("invalid end date %q (expected YYYY-MM-DD)", endStr)
				}
				e.EndDate = &end
			}

			if err := app.Elements.Create(cmd.Context(), e); err != nil {
				return err
			}
			if stageID != "" {
				stages, err := app.Stages.ListByPlan(cmd.Context(), planID)
				if err != nil {
					return err
				}
				for _, s := range stages {
					if s.ID == stageID || s.Name == stageID {
						if err := app.Stages.AssignElements(cmd.Context(), s.ID, append(s.ElementIDs, e.ID)); err != nil {
							return err
						}
						break
					}
				}
			}
			app.Timeline.Invalidate()
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s on %s\n",
				kind, formatter.StyleBold.Render(label), dateStr)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "element label")
	cmd.Flags().StringVar(&kind, "kind", "task", "element kind (activity|deliverable|task)")
	cmd.Flags().StringVar(&dateStr, "date", "", "scheduled date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "optional end date for multi-day elements")
	cmd.Flags().StringVar(&stageID, "stage", "", "stage ID or name to attach the element to")
	return cmd
}

// runElementForm collects the missing element fields with a huh form.
func runElementForm(label, kind, dateStr, endStr *string) error {
	if *kind == "" {
		*kind = "task"
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Value(label).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("label is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("task", "task"),
					huh.NewOption("activity", "activity"),
					huh.NewOption("deliverable", "deliverable"),
				).
				Value(kind),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Placeholder("2024-06-01").
				Value(dateStr).
				Validate(validateDate),
			huh.NewInput().
				Title("End date (blank for single day)").
				Value(endStr).
				Validate(validateOptionalDate),
		),
	).WithTheme(planboardHuhTheme()).WithShowHelp(false)

	return form.Run()
}

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validateDate(s)
}

func newElementStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <element-id> <status>",
		Short: "Set an element's status (pending|inprogress|validated|finished)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Elements.SetStatus(cmd.Context(), args[0], domain.ElementStatus(args[1])); err != nil {
				return err
			}
			app.Timeline.Invalidate()
			fmt.Fprintln(cmd.OutOrStdout(), "Updated.")
			return nil
		},
	}
}
