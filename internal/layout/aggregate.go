// Package layout computes the board's day sequence and row packing.
// Everything in this package is pure computation over domain entities;
// the only state lives in Cache's memo slots.
package layout

import (
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
)

// ErrInvalidRange is wrapped by AggregateDays when end precedes start.
var ErrInvalidRange = fmt.Errorf("end date precedes start date")

// AggregateDays folds elements, completion marks, and capacities into one
// DayRecord per calendar day in [start, end] inclusive.
//
// Inputs are pre-indexed by day key once, so the whole pass is O(days + n)
// rather than O(days * n).
func AggregateDays(
	start, end time.Time,
	elements []*domain.Element,
	completions []domain.CompletionMark,
	capacities []*domain.Capacity,
	capacityCeiling int,
) ([]*domain.DayRecord, error) {
	start = domain.Midnight(start)
	end = domain.Midnight(end)
	if end.Before(start) {
		return nil, fmt.Errorf("aggregating days %s..%s: %w",
			start.Format(domain.DateLayout), end.Format(domain.DateLayout), ErrInvalidRange)
	}

	elementsByDay := make(map[string][]*domain.Element, len(elements))
	for _, e := range elements {
		if e == nil {
			continue
		}
		key := domain.DateKey(e.Date)
		elementsByDay[key] = append(elementsByDay[key], e)
	}

	completionsByDay := make(map[string][]domain.CompletionMark, len(completions))
	for _, c := range completions {
		key := domain.DateKey(c.Date)
		completionsByDay[key] = append(completionsByDay[key], c)
	}

	// One capacity record per day; last write wins on duplicates.
	capacityByDay := make(map[string]*domain.Capacity, len(capacities))
	for _, c := range capacities {
		if c == nil {
			continue
		}
		capacityByDay[domain.DateKey(c.Date)] = c
	}

	total := domain.DaysBetween(start, end) + 1
	days := make([]*domain.DayRecord, 0, total)

	for i := 0; i < total; i++ {
		date := start.AddDate(0, 0, i)
		key := domain.DateKey(date)
		rec := &domain.DayRecord{Date: date}

		seen := make(map[string]bool)
		for _, e := range elementsByDay[key] {
			if e.ID == "" || seen[e.ID] {
				continue
			}
			seen[e.ID] = true
			countElement(rec, e)
			rec.AddAssigned(e.ID)
		}

		// Completed-elsewhere entries only mark the element as present.
		for _, c := range completionsByDay[key] {
			rec.AddAssigned(c.ElementID)
		}

		if c := capacityByDay[key]; c != nil {
			applyCapacity(rec, c, capacityCeiling)
		}

		days = append(days, rec)
	}

	return days, nil
}

func countElement(rec *domain.DayRecord, e *domain.Element) {
	switch e.Kind {
	case domain.ElementActivity:
		rec.ActivityTotal++
		if e.Status.IsCompleted() {
			rec.ActivityCompleted++
		}
	case domain.ElementDeliverable:
		rec.DeliverableTotal++
		if e.Status.IsCompleted() {
			rec.DeliverableCompleted++
		}
	case domain.ElementTask:
		rec.TaskTotal++
		if e.Status.IsCompleted() {
			rec.TaskCompleted++
		}
	}

	if e.Status.IsCompleted() {
		rec.ElementCompletedCount++
	} else {
		rec.ElementPendingCount++
	}
}

func applyCapacity(rec *domain.DayRecord, c *domain.Capacity, ceiling int) {
	rec.CapacityMax = ceiling
	rec.CapacityEffective = c.Effective
	rec.BusyEffective = c.Busy
	rec.CompletedEffective = c.Completed
	rec.WeatherIcon = c.WeatherIcon

	switch progress := rec.Utilization(); {
	case progress > 100:
		rec.AlertLevel = domain.AlertCritical
	case progress > 80:
		rec.AlertLevel = domain.AlertWarning
	default:
		rec.AlertLevel = domain.AlertNone
	}
}
