// Package window computes which part of the board is on screen: the
// day index centered in the viewport, the inclusive day range worth
// materializing, and the vertical auto-scroll decision.
//
// All functions are pure; the board's scroll orchestration owns the
// mutable state and calls in here on throttled ticks.
package window

import "math"

// Range is an inclusive [Start, End] span of day indices.
type Range struct {
	Start int
	End   int
}

// Len returns the number of day indices covered by the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether the day index falls inside the range.
func (r Range) Contains(i int) bool {
	return r.Start <= i && i <= r.End
}

// dayStride is the horizontal distance between two day columns.
// Margins overlap neighbouring columns, hence the subtraction.
func dayStride(dayWidth, dayMargin float64) float64 {
	return dayWidth - dayMargin
}

// CenterDayIndex returns the index of the day column centered in the
// viewport at the given horizontal scroll offset. Returns 0 for an empty
// board and clamps to the valid index range otherwise.
func CenterDayIndex(scrollOffset, viewportWidth, dayWidth, dayMargin float64, totalDays int) int {
	if totalDays <= 0 {
		return 0
	}
	stride := dayStride(dayWidth, dayMargin)
	if stride <= 0 {
		return 0
	}

	center := scrollOffset + viewportWidth/2
	idx := int(math.Round(center / stride))
	return clampInt(idx, 0, totalDays-1)
}

// VisibleRange returns the inclusive day-index range to materialize for
// rendering: the days covering the viewport around center, widened by
// bufferDays on each side, clamped to the board.
func VisibleRange(center int, viewportWidth, dayWidth, dayMargin float64, bufferDays, totalDays int) Range {
	if totalDays <= 0 {
		return Range{}
	}
	stride := dayStride(dayWidth, dayMargin)
	if stride <= 0 {
		return Range{End: totalDays - 1}
	}

	visible := int(math.Ceil(viewportWidth / stride))
	start := clampInt(center-visible/2-bufferDays, 0, totalDays-1)
	end := clampInt(center+visible/2+bufferDays, start, totalDays-1)
	return Range{Start: start, End: end}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
