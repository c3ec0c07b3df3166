package window

import "github.com/alexanderramin/planboard/internal/layout"

// ScrollInput is everything the auto-scroll decision reads on one tick.
type ScrollInput struct {
	CurrentOffset  float64 // horizontal scroll offset now
	PreviousOffset float64 // horizontal scroll offset on the previous tick
	CenterIndex    int     // day index centered in the viewport
	Rows           []*layout.Row

	RowHeight float64
	RowMargin float64

	// UserScrollOffset is the vertical offset the user scrolled to by
	// hand, or nil when the user has not scrolled since the last applied
	// auto-scroll.
	UserScrollOffset *float64

	ViewportHeight float64

	// SearchFrom is the row index to start the target search from,
	// normally the row of the previous target. Clamped into range.
	SearchFrom int
}

// ScrollState is the auto-scroll decision for one tick. Transient; the
// board recomputes it on every debounced center change.
type ScrollState struct {
	CenterDayIndex    int
	TargetRow         int // -1 when no row matched
	TargetOffset      *float64
	EnableAutoScroll  bool
	ScrollingLeftward bool
}

// ComputeScrollState determines whether the vertical position should be
// adjusted to reveal the row nearest the centered day, and to where.
//
// Auto-scroll is suppressed when the user has already scrolled past the
// target: a manual position numerically beyond the target offset wins.
func ComputeScrollState(in ScrollInput) ScrollState {
	state := ScrollState{
		CenterDayIndex:    in.CenterIndex,
		TargetRow:         -1,
		ScrollingLeftward: in.CurrentOffset < in.PreviousOffset,
	}
	if len(in.Rows) == 0 {
		return state
	}

	target := findTargetRow(in.Rows, in.CenterIndex, in.SearchFrom, state.ScrollingLeftward)
	if target < 0 {
		return state
	}
	state.TargetRow = target

	offset := float64(target) * (in.RowHeight + 2*in.RowMargin)

	// Near the bottom of the row list, snap to the maximum scroll extent
	// instead of a position that would bounce right back.
	maxExtent := float64(len(in.Rows))*(in.RowHeight+2*in.RowMargin) - in.ViewportHeight
	if maxExtent < 0 {
		maxExtent = 0
	}
	if maxExtent-offset < in.ViewportHeight/2 {
		offset = maxExtent
	}

	state.TargetOffset = &offset
	state.EnableAutoScroll = in.UserScrollOffset == nil || *in.UserScrollOffset < offset
	return state
}

// findTargetRow looks for a row whose span contains the center index,
// scanning forward from the reference row and wrapping to the rows it
// skipped. When no row contains the center, it falls back to the nearest
// row ahead of the center (scrolling rightward) or behind it (leftward).
func findTargetRow(rows []*layout.Row, center, searchFrom int, leftward bool) int {
	from := clampInt(searchFrom, 0, len(rows)-1)

	for r := from; r < len(rows); r++ {
		if rows[r].Contains(center) {
			return r
		}
	}
	for r := 0; r < from; r++ {
		if rows[r].Contains(center) {
			return r
		}
	}

	best := -1
	bestDist := -1
	for r, row := range rows {
		var dist int
		if leftward {
			end := row.SpanEnd()
			if end < 0 || end >= center {
				continue
			}
			dist = center - end
		} else {
			start := row.SpanStart()
			if start <= center {
				continue
			}
			dist = start - center
		}
		if best == -1 || dist < bestDist {
			best = r
			bestDist = dist
		}
	}
	return best
}
