package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/planboard/internal/domain"
)

// Plan options

type PlanOption func(*domain.Plan)

func WithCapacityCeiling(n int) PlanOption {
	return func(p *domain.Plan) {
		p.CapacityCeiling = n
	}
}

func NewTestPlan(name string, start, end time.Time, opts ...PlanOption) *domain.Plan {
	now := time.Now().UTC()
	p := &domain.Plan{
		ID:              uuid.New().String(),
		Name:            name,
		StartDate:       domain.Midnight(start),
		EndDate:         domain.Midnight(end),
		CapacityCeiling: 10,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stage options

type StageOption func(*domain.Stage)

func WithStageKind(k domain.StageKind) StageOption {
	return func(s *domain.Stage) {
		s.Kind = k
	}
}

func WithStageColor(c string) StageOption {
	return func(s *domain.Stage) {
		s.Color = c
	}
}

func WithStageElements(ids ...string) StageOption {
	return func(s *domain.Stage) {
		s.ElementIDs = ids
	}
}

func WithStageOrder(i int) StageOption {
	return func(s *domain.Stage) {
		s.OrderIndex = i
	}
}

func NewTestStage(planID, name string, start, end time.Time, opts ...StageOption) *domain.Stage {
	now := time.Now().UTC()
	s := &domain.Stage{
		ID:        uuid.New().String(),
		PlanID:    planID,
		Name:      name,
		Kind:      domain.StageStage,
		StartDate: domain.Midnight(start),
		EndDate:   domain.Midnight(end),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Element options

type ElementOption func(*domain.Element)

func WithElementKind(k domain.ElementKind) ElementOption {
	return func(e *domain.Element) {
		e.Kind = k
	}
}

func WithElementStatus(st domain.ElementStatus) ElementOption {
	return func(e *domain.Element) {
		e.Status = st
	}
}

func WithElementEnd(end time.Time) ElementOption {
	return func(e *domain.Element) {
		d := domain.Midnight(end)
		e.EndDate = &d
	}
}

func WithElementID(id string) ElementOption {
	return func(e *domain.Element) {
		e.ID = id
	}
}

func NewTestElement(planID, label string, date time.Time, opts ...ElementOption) *domain.Element {
	now := time.Now().UTC()
	e := &domain.Element{
		ID:        uuid.New().String(),
		PlanID:    planID,
		Label:     label,
		Kind:      domain.ElementTask,
		Status:    domain.ElementPending,
		Date:      domain.Midnight(date),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTestCapacity builds a capacity record for one day.
func NewTestCapacity(planID string, date time.Time, effective, busy float64) *domain.Capacity {
	return &domain.Capacity{
		PlanID:    planID,
		Date:      domain.Midnight(date),
		Effective: effective,
		Busy:      busy,
	}
}

// Day returns midnight UTC of 2024-01-01 plus the given offset, a
// convenient fixed origin for layout tests.
func Day(offset int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}
