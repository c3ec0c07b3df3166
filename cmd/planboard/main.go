package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/planboard/internal/cli"
	"github.com/alexanderramin/planboard/internal/config"
	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/alexanderramin/planboard/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.planboard/planboard.db
	dbPath := os.Getenv("PLANBOARD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".planboard", "planboard.db")
	}

	// Display config: env var or default ~/.planboard/display.yaml
	cfgPath := os.Getenv("PLANBOARD_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	display, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	planRepo := repository.NewSQLitePlanRepo(database)
	stageRepo := repository.NewSQLiteStageRepo(database)
	elementRepo := repository.NewSQLiteElementRepo(database)
	capacityRepo := repository.NewSQLiteCapacityRepo(database)
	completionRepo := repository.NewSQLiteCompletionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case logging is opt-in.
	var observers []service.UseCaseObserver
	if os.Getenv("PLANBOARD_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Plans:      service.NewPlanService(planRepo),
		Stages:     service.NewStageService(stageRepo, elementRepo),
		Elements:   service.NewElementService(elementRepo),
		Capacities: service.NewCapacityService(capacityRepo),
		Timeline: service.NewTimelineService(
			planRepo, stageRepo, elementRepo, capacityRepo, completionRepo, observers...),
		Import: service.NewImportService(uow, observers...),

		Display: display,
		DBPath:  dbPath,
	}

	// Detect interactive terminal for form and board entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
