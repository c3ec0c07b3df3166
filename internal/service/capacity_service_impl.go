package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
)

type capacityService struct {
	capacities repository.CapacityRepo
}

func NewCapacityService(capacities repository.CapacityRepo) CapacityService {
	return &capacityService{capacities: capacities}
}

func (s *capacityService) Set(ctx context.Context, c *domain.Capacity) error {
	if c.PlanID == "" {
		return fmt.Errorf("capacity plan id is required")
	}
	if c.Date.IsZero() {
		return fmt.Errorf("capacity date is required")
	}
	if c.Effective < 0 || c.Busy < 0 || c.Completed < 0 {
		return fmt.Errorf("capacity figures must not be negative")
	}
	return s.capacities.Upsert(ctx, c)
}

func (s *capacityService) ListByPlan(ctx context.Context, planID string) ([]*domain.Capacity, error) {
	return s.capacities.ListByPlan(ctx, planID)
}
