package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/layout"
	"github.com/alexanderramin/planboard/internal/repository"
)

type timelineService struct {
	plans       repository.PlanRepo
	stages      repository.StageRepo
	elements    repository.ElementRepo
	capacities  repository.CapacityRepo
	completions repository.CompletionRepo

	cache    *layout.Cache
	observer UseCaseObserver
}

// NewTimelineService wires the layout cache over the repositories.
// Cache-boundary failures are reported through the observer and degrade
// to an empty board.
func NewTimelineService(
	plans repository.PlanRepo,
	stages repository.StageRepo,
	elements repository.ElementRepo,
	capacities repository.CapacityRepo,
	completions repository.CompletionRepo,
	observers ...UseCaseObserver,
) TimelineService {
	s := &timelineService{
		plans:       plans,
		stages:      stages,
		elements:    elements,
		capacities:  capacities,
		completions: completions,
		observer:    useCaseObserverOrNoop(observers),
	}
	s.cache = layout.NewCache(func(op string, err error) {
		s.observer.ObserveUseCase(context.Background(), UseCaseEvent{
			Name:      op,
			Success:   false,
			Err:       err,
			StartedAt: time.Now().UTC(),
		})
	})
	return s
}

func (s *timelineService) GetTimeline(ctx context.Context, planID string) (*TimelineData, error) {
	started := time.Now()

	data, err := s.buildTimeline(ctx, planID)

	event := UseCaseEvent{
		Name:      "get_timeline",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"plan_id": planID},
		StartedAt: started.UTC(),
	}
	if data != nil {
		event.Fields["days"] = len(data.Days)
		event.Fields["rows"] = len(data.Rows)
	}
	s.observer.ObserveUseCase(ctx, event)

	return data, err
}

func (s *timelineService) buildTimeline(ctx context.Context, planID string) (*TimelineData, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}

	stages, err := s.stages.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("loading stages: %w", err)
	}
	elements, err := s.elements.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("loading elements: %w", err)
	}
	capacities, err := s.capacities.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("loading capacities: %w", err)
	}
	completions, err := s.completions.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("loading completions: %w", err)
	}

	in := layout.Inputs{
		Start:           plan.StartDate,
		End:             plan.EndDate,
		Elements:        elements,
		Completions:     completions,
		Capacities:      capacities,
		Stages:          stages,
		CapacityCeiling: plan.CapacityCeiling,
	}

	return &TimelineData{
		Plan: plan,
		Days: s.cache.Days(in),
		Rows: s.cache.Rows(in),
	}, nil
}

// Invalidate drops the layout memo; the next GetTimeline recomputes.
func (s *timelineService) Invalidate() {
	s.cache.Clear()
}
