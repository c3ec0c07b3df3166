package service

import (
	"context"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/importer"
	"github.com/alexanderramin/planboard/internal/layout"
)

// TimelineData is everything the rendering layer needs for one board:
// plain data, no behavior.
type TimelineData struct {
	Plan *domain.Plan
	Days []*domain.DayRecord
	Rows []*layout.Row
}

// TotalDays returns the length of the day sequence.
func (t *TimelineData) TotalDays() int {
	return len(t.Days)
}

// TimelineService builds the board layout for a plan, memoized through
// the layout cache until inputs change or Invalidate is called.
type TimelineService interface {
	GetTimeline(ctx context.Context, planID string) (*TimelineData, error)
	Invalidate()
}

type PlanService interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	GetByName(ctx context.Context, name string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Delete(ctx context.Context, id string) error
}

type StageService interface {
	Create(ctx context.Context, s *domain.Stage) error
	ListByPlan(ctx context.Context, planID string) ([]*domain.Stage, error)
	AssignElements(ctx context.Context, stageID string, elementIDs []string) error
}

type ElementService interface {
	Create(ctx context.Context, e *domain.Element) error
	ListByPlan(ctx context.Context, planID string) ([]*domain.Element, error)
	SetStatus(ctx context.Context, id string, status domain.ElementStatus) error
}

type CapacityService interface {
	Set(ctx context.Context, c *domain.Capacity) error
	ListByPlan(ctx context.Context, planID string) ([]*domain.Capacity, error)
}

// ImportResult summarizes a completed schedule import.
type ImportResult struct {
	Plan            *domain.Plan
	StageCount      int
	ElementCount    int
	CapacityCount   int
	CompletionCount int
	Dropped         []string
}

type ImportService interface {
	ImportPlan(ctx context.Context, filePath string) (*ImportResult, error)
	ImportPlanFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

// nowUTC is the single clock used when stamping entities.
func nowUTC() time.Time {
	return time.Now().UTC()
}
