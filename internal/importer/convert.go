package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/planboard/internal/domain"
)

// Generated holds the domain entities produced from a validated,
// filtered import schema. Refs from the file are replaced by fresh
// UUIDs; stage membership lists carry the mapped element IDs.
type Generated struct {
	Plan        *domain.Plan
	Stages      []*domain.Stage
	Elements    []*domain.Element
	Capacities  []*domain.Capacity
	Completions []domain.CompletionMark
}

// Convert maps a filtered schema to domain entities. The schema must have
// passed ValidateImportSchema and FilterRecords first.
func Convert(schema *ImportSchema) (*Generated, error) {
	now := time.Now().UTC()

	start, err := time.Parse(domain.DateLayout, schema.Plan.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing plan start date: %w", err)
	}
	end, err := time.Parse(domain.DateLayout, schema.Plan.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parsing plan end date: %w", err)
	}

	plan := &domain.Plan{
		ID:              uuid.New().String(),
		Name:            schema.Plan.Name,
		StartDate:       start,
		EndDate:         end,
		CapacityCeiling: domain.IntFromPtrWithDefault(0, schema.Plan.CapacityCeiling),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	gen := &Generated{Plan: plan}

	elementIDs := make(map[string]string, len(schema.Elements))
	for _, e := range schema.Elements {
		id := uuid.New().String()
		elementIDs[e.Ref] = id

		status := domain.ElementPending
		if e.Status != "" {
			status = domain.ElementStatus(e.Status)
		}
		elem := &domain.Element{
			ID:        id,
			PlanID:    plan.ID,
			Label:     e.Label,
			Kind:      domain.ElementKind(e.Kind),
			Status:    status,
			Date:      mustDate(e.Date),
			Progress:  domain.Float64FromPtrWithDefault(0, e.Progress),
			Color:     e.Color,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if e.EndDate != nil {
			d := mustDate(*e.EndDate)
			elem.EndDate = &d
		}
		gen.Elements = append(gen.Elements, elem)
	}

	for i, s := range schema.Stages {
		ids := make([]string, 0, len(s.ElementRefs))
		for _, ref := range s.ElementRefs {
			ids = append(ids, elementIDs[ref])
		}
		gen.Stages = append(gen.Stages, &domain.Stage{
			ID:         uuid.New().String(),
			PlanID:     plan.ID,
			Name:       s.Name,
			Kind:       domain.StageKind(s.Kind),
			StartDate:  mustDate(s.StartDate),
			EndDate:    mustDate(s.EndDate),
			Color:      s.Color,
			Progress:   domain.Float64FromPtrWithDefault(0, s.Progress),
			OrderIndex: i,
			ElementIDs: ids,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	for _, c := range schema.Capacities {
		gen.Capacities = append(gen.Capacities, &domain.Capacity{
			PlanID:      plan.ID,
			Date:        mustDate(c.Date),
			Effective:   domain.Float64FromPtrWithDefault(0, c.Effective),
			Busy:        domain.Float64FromPtrWithDefault(0, c.Busy),
			Completed:   domain.Float64FromPtrWithDefault(0, c.Completed),
			WeatherIcon: c.WeatherIcon,
		})
	}

	for _, c := range schema.Completions {
		id, ok := elementIDs[c.ElementRef]
		if !ok {
			// Completions may reference elements tracked outside this
			// plan; keep the raw ref as the ID in that case.
			id = c.ElementRef
		}
		gen.Completions = append(gen.Completions, domain.CompletionMark{
			PlanID:    plan.ID,
			ElementID: id,
			Date:      mustDate(c.Date),
		})
	}

	return gen, nil
}

// mustDate parses a date already vetted by the filter pass.
func mustDate(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}
