package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/importer"
	"github.com/alexanderramin/planboard/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService imports whole schedule files inside one transaction:
// either every kept record lands or none do.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportPlan(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportPlanFromSchema(ctx, schema)
}

func (s *importService) ImportPlanFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	started := time.Now()

	result, err := s.importSchema(ctx, schema)

	event := UseCaseEvent{
		Name:      "import_plan",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{},
		StartedAt: started.UTC(),
	}
	if result != nil {
		event.Fields["stages"] = result.StageCount
		event.Fields["elements"] = result.ElementCount
		event.Fields["dropped"] = len(result.Dropped)
	}
	s.observer.ObserveUseCase(ctx, event)

	return result, err
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	filtered, dropped := importer.FilterRecords(schema)

	generated, err := importer.Convert(filtered)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := repository.NewSQLitePlanRepo(tx)
		stages := repository.NewSQLiteStageRepo(tx)
		elements := repository.NewSQLiteElementRepo(tx)
		capacities := repository.NewSQLiteCapacityRepo(tx)
		completions := repository.NewSQLiteCompletionRepo(tx)

		if err := plans.Create(ctx, generated.Plan); err != nil {
			return fmt.Errorf("creating plan: %w", err)
		}
		for _, e := range generated.Elements {
			if err := elements.Create(ctx, e); err != nil {
				return fmt.Errorf("creating element %q: %w", e.Label, err)
			}
		}
		for _, st := range generated.Stages {
			if err := stages.Create(ctx, st); err != nil {
				return fmt.Errorf("creating stage %q: %w", st.Name, err)
			}
		}
		for _, c := range generated.Capacities {
			if err := capacities.Upsert(ctx, c); err != nil {
				return fmt.Errorf("creating capacity for %s: %w", c.Date.Format("2006-01-02"), err)
			}
		}
		for _, m := range generated.Completions {
			if err := completions.Add(ctx, m); err != nil {
				return fmt.Errorf("creating completion for %s: %w", m.ElementID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Plan:            generated.Plan,
		StageCount:      len(generated.Stages),
		ElementCount:    len(generated.Elements),
		CapacityCount:   len(generated.Capacities),
		CompletionCount: len(generated.Completions),
		Dropped:         dropped,
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
