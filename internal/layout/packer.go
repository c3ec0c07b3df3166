package layout

import (
	"sort"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
)

// PackRows merges stages with their member elements, resolves each item's
// span against the day sequence, and greedily assigns items to the first
// row where they fit.
//
// Placement scans rows starting at the last row claimed by a container,
// never row 0: a later stage's children are never drawn above an earlier,
// still-open stage, so chronological stages cannot visually regress upward.
//
// The overlap rule: an existing item vetoes a row for a candidate when
// existing.EndIndex+1 > candidate.StartIndex. Two items may share a row
// only when one ends strictly before the day the other starts.
//
// As a second pass, each DayRecord's CurrentStage is patched to the first
// stage (in merge order) whose span covers that day.
func PackRows(
	start, end time.Time,
	days []*domain.DayRecord,
	stages []*domain.Stage,
	elements []*domain.Element,
) []*Row {
	if len(days) == 0 {
		return nil
	}

	items := mergeItems(stages, elements)
	resolveIndices(items, domain.Midnight(start), days)

	var rows []*Row
	lastStageRow := 0

	for _, it := range items {
		if !it.Resolved() {
			continue
		}

		placed := false
		for r := lastStageRow; r < len(rows); r++ {
			if rowAccepts(rows[r], it) {
				rows[r].Items = append(rows[r].Items, it)
				if it.Container {
					lastStageRow = r
				}
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, &Row{Items: []*Item{it}})
			if it.Container {
				lastStageRow = len(rows) - 1
			}
		}
	}

	patchCurrentStages(days, stages)

	return rows
}

// mergeItems builds the packing order: each stage followed by its member
// elements (deduplicated per stage, sorted by element start date).
// Elements not referenced by any stage do not participate in packing.
func mergeItems(stages []*domain.Stage, elements []*domain.Element) []*Item {
	byID := make(map[string]*domain.Element, len(elements))
	for _, e := range elements {
		if e != nil && e.ID != "" {
			byID[e.ID] = e
		}
	}

	var items []*Item

	for _, s := range stages {
		if s == nil {
			continue
		}
		items = append(items, stageItem(s))

		var members []*domain.Element
		seen := make(map[string]bool)
		for _, id := range s.ElementIDs {
			e := byID[id]
			if e == nil || seen[id] {
				continue
			}
			seen[id] = true
			members = append(members, e)
		}
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Date.Before(members[j].Date)
		})
		for _, e := range members {
			items = append(items, elementItem(e, s))
		}
	}

	return items
}

// resolveIndices locates each item's span in the day sequence. Start dates
// earlier than the board start are clamped to the range start; items whose
// start or end is not a board day stay unresolved and are skipped.
func resolveIndices(items []*Item, start time.Time, days []*domain.DayRecord) {
	indexByDay := make(map[string]int, len(days))
	for i, d := range days {
		indexByDay[domain.DateKey(d.Date)] = i
	}

	for _, it := range items {
		s := it.StartDate
		if s.Before(start) {
			s = start
		}
		if idx, ok := indexByDay[domain.DateKey(s)]; ok {
			it.StartIndex = idx
		}
		if idx, ok := indexByDay[domain.DateKey(it.EndDate)]; ok {
			it.EndIndex = idx
		}
		if it.Resolved() && it.EndIndex < it.StartIndex {
			it.StartIndex = unresolvedIndex
			it.EndIndex = unresolvedIndex
		}
	}
}

func rowAccepts(row *Row, candidate *Item) bool {
	for _, existing := range row.Items {
		if existing.EndIndex+1 > candidate.StartIndex {
			return false
		}
	}
	return true
}

func patchCurrentStages(days []*domain.DayRecord, stages []*domain.Stage) {
	for _, rec := range days {
		rec.CurrentStage = nil
		for _, s := range stages {
			if s == nil {
				continue
			}
			if !rec.Date.Before(domain.Midnight(s.StartDate)) &&
				!rec.Date.After(domain.Midnight(s.EndDate)) {
				rec.CurrentStage = s
				break
			}
		}
	}
}
