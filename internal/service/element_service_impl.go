package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
)

type elementService struct {
	elements repository.ElementRepo
}

func NewElementService(elements repository.ElementRepo) ElementService {
	return &elementService{elements: elements}
}

func (s *elementService) Create(ctx context.Context, e *domain.Element) error {
	if e.Label == "" {
		return fmt.Errorf("element label is required")
	}
	if !domain.ValidElementKinds[string(e.Kind)] {
		return fmt.Errorf("invalid element kind %q", e.Kind)
	}
	if e.Status == "" {
		e.Status = domain.ElementPending
	}
	if !domain.ValidElementStatuses[string(e.Status)] {
		return fmt.Errorf("invalid element status %q", e.Status)
	}
	if e.EndDate != nil && e.EndDate.Before(e.Date) {
		return fmt.Errorf("element end date precedes start date")
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := nowUTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	return s.elements.Create(ctx, e)
}

func (s *elementService) ListByPlan(ctx context.Context, planID string) ([]*domain.Element, error) {
	return s.elements.ListByPlan(ctx, planID)
}

func (s *elementService) SetStatus(ctx context.Context, id string, status domain.ElementStatus) error {
	if !domain.ValidElementStatuses[string(status)] {
		return fmt.Errorf("invalid element status %q", status)
	}
	return s.elements.UpdateStatus(ctx, id, status)
}
