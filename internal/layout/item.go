package layout

import (
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
)

// unresolvedIndex marks an item whose date could not be located in the
// day sequence. Such items are excluded from row placement.
const unresolvedIndex = -1

// Item is a stage or element normalized into one shape for packing.
type Item struct {
	ID        string
	Container bool // true for stage kinds, false for leaf elements
	StageKind domain.StageKind
	Kind      domain.ElementKind

	StartDate time.Time
	EndDate   time.Time

	// Day indices resolved against the board's day sequence.
	StartIndex int
	EndIndex   int

	Label         string
	Progress      float64
	Color         string
	ParentStageID string
}

// Resolved reports whether both span indices were located in the day sequence.
func (it *Item) Resolved() bool {
	return it.StartIndex != unresolvedIndex && it.EndIndex != unresolvedIndex
}

// Contains reports whether the given day index falls inside the item's span.
func (it *Item) Contains(dayIndex int) bool {
	return it.Resolved() && it.StartIndex <= dayIndex && dayIndex <= it.EndIndex
}

// Row is one horizontal lane of non-overlapping items, ordered by
// ascending StartIndex as a consequence of the greedy merge order.
type Row struct {
	Items []*Item
}

// SpanStart returns the lowest start index in the row, or unresolvedIndex
// for an empty row.
func (r *Row) SpanStart() int {
	if len(r.Items) == 0 {
		return unresolvedIndex
	}
	start := r.Items[0].StartIndex
	for _, it := range r.Items[1:] {
		if it.StartIndex < start {
			start = it.StartIndex
		}
	}
	return start
}

// SpanEnd returns the highest end index in the row, or unresolvedIndex
// for an empty row.
func (r *Row) SpanEnd() int {
	if len(r.Items) == 0 {
		return unresolvedIndex
	}
	end := r.Items[0].EndIndex
	for _, it := range r.Items[1:] {
		if it.EndIndex > end {
			end = it.EndIndex
		}
	}
	return end
}

// Contains reports whether any item in the row covers the given day index.
func (r *Row) Contains(dayIndex int) bool {
	for _, it := range r.Items {
		if it.Contains(dayIndex) {
			return true
		}
	}
	return false
}

func stageItem(s *domain.Stage) *Item {
	return &Item{
		ID:         s.ID,
		Container:  true,
		StageKind:  s.Kind,
		StartDate:  domain.Midnight(s.StartDate),
		EndDate:    domain.Midnight(s.EndDate),
		StartIndex: unresolvedIndex,
		EndIndex:   unresolvedIndex,
		Label:      s.Name,
		Progress:   s.Progress,
		Color:      s.Color,
	}
}

func elementItem(e *domain.Element, parent *domain.Stage) *Item {
	start, end := e.Span()
	return &Item{
		ID:            e.ID,
		Kind:          e.Kind,
		StartDate:     domain.Midnight(start),
		EndDate:       domain.Midnight(end),
		StartIndex:    unresolvedIndex,
		EndIndex:      unresolvedIndex,
		Label:         e.Label,
		Progress:      e.Progress,
		Color:         domain.CoalesceStr(parent.Color, e.Color),
		ParentStageID: parent.ID,
	}
}
