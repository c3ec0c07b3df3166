package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
)

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	GetByName(ctx context.Context, name string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id string) error
}

type StageRepo interface {
	Create(ctx context.Context, s *domain.Stage) error
	GetByID(ctx context.Context, id string) (*domain.Stage, error)
	// ListByPlan returns stages ordered by order_index then start date,
	// each with its ElementIDs in membership position order.
	ListByPlan(ctx context.Context, planID string) ([]*domain.Stage, error)
	Update(ctx context.Context, s *domain.Stage) error
	SetElements(ctx context.Context, stageID string, elementIDs []string) error
	Delete(ctx context.Context, id string) error
}

type ElementRepo interface {
	Create(ctx context.Context, e *domain.Element) error
	GetByID(ctx context.Context, id string) (*domain.Element, error)
	ListByPlan(ctx context.Context, planID string) ([]*domain.Element, error)
	Update(ctx context.Context, e *domain.Element) error
	UpdateStatus(ctx context.Context, id string, status domain.ElementStatus) error
	Delete(ctx context.Context, id string) error
}

type CapacityRepo interface {
	Upsert(ctx context.Context, c *domain.Capacity) error
	GetByDate(ctx context.Context, planID string, date time.Time) (*domain.Capacity, error)
	ListByPlan(ctx context.Context, planID string) ([]*domain.Capacity, error)
	Delete(ctx context.Context, planID string, date time.Time) error
}

type CompletionRepo interface {
	Add(ctx context.Context, m domain.CompletionMark) error
	ListByPlan(ctx context.Context, planID string) ([]domain.CompletionMark, error)
	Delete(ctx context.Context, m domain.CompletionMark) error
}
