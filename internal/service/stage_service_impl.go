package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
)

type stageService struct {
	stages   repository.StageRepo
	elements repository.ElementRepo
}

func NewStageService(stages repository.StageRepo, elements repository.ElementRepo) StageService {
	return &stageService{stages: stages, elements: elements}
}

func (s *stageService) Create(ctx context.Context, st *domain.Stage) error {
	if st.Name == "" {
		return fmt.Errorf("stage name is required")
	}
	if !domain.ValidStageKinds[string(st.Kind)] {
		return fmt.Errorf("invalid stage kind %q", st.Kind)
	}
	if st.EndDate.Before(st.StartDate) {
		return fmt.Errorf("stage end date precedes start date")
	}
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	now := nowUTC()
	if st.CreatedAt.IsZero() {
		st.CreatedAt = now
	}
	st.UpdatedAt = now
	return s.stages.Create(ctx, st)
}

func (s *stageService) ListByPlan(ctx context.Context, planID string) ([]*domain.Stage, error) {
	return s.stages.ListByPlan(ctx, planID)
}

// AssignElements replaces a stage's membership list after verifying every
// element exists; unknown IDs fail the whole call so membership never
// points at nothing.
func (s *stageService) AssignElements(ctx context.Context, stageID string, elementIDs []string) error {
	for _, id := range elementIDs {
		if _, err := s.elements.GetByID(ctx, id); err != nil {
			return fmt.Errorf("element %s: %w", id, err)
		}
	}
	return s.stages.SetElements(ctx, stageID, elementIDs)
}
