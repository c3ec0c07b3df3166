package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
)

type planService struct {
	plans repository.PlanRepo
}

func NewPlanService(plans repository.PlanRepo) PlanService {
	return &planService{plans: plans}
}

func (s *planService) Create(ctx context.Context, p *domain.Plan) error {
	if p.Name == "" {
		return fmt.Errorf("plan name is required")
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("plan end date %s precedes start date %s",
			p.EndDate.Format(domain.DateLayout), p.StartDate.Format(domain.DateLayout))
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := nowUTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return s.plans.Create(ctx, p)
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) GetByName(ctx context.Context, name string) (*domain.Plan, error) {
	return s.plans.GetByName(ctx, name)
}

func (s *planService) List(ctx context.Context) ([]*domain.Plan, error) {
	return s.plans.List(ctx)
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}
