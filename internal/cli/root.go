package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/planboard/internal/config"
	"github.com/alexanderramin/planboard/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans      service.PlanService
	Stages     service.StageService
	Elements   service.ElementService
	Capacities service.CapacityService
	Timeline   service.TimelineService
	Import     service.ImportService

	// Display geometry, resolved and validated at startup.
	Display config.Display

	// DBPath is watched in board --watch mode.
	DBPath string

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are only offered when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "planboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "planboard",
		Short: "Schedule board: day aggregation and row-packed timeline",
	}

	root.AddCommand(
		newPlanCmd(app),
		newImportCmd(app),
		newDaysCmd(app),
		newElementCmd(app),
		newCapacityCmd(app),
		newBoardCmd(app),
	)

	return root
}

// resolvePlan finds a plan by ID first, then by name.
func resolvePlan(cmd *cobra.Command, app *App, ref string) (string, error) {
	ctx := cmd.Context()
	if p, err := app.Plans.GetByID(ctx, ref); err == nil {
		return p.ID, nil
	}
	p, err := app.Plans.GetByName(ctx, ref)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}
