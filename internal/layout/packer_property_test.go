package layout

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/testutil"
)

// TestPackRows_Invariants_NoRowOverlap property-tests the packing
// invariant: within a row, every item ends strictly before the next one
// starts, and every placed index lies on the board.
func TestPackRows_Invariants_NoRowOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		totalDays := rng.Intn(60) + 10
		numStages := rng.Intn(6) + 1

		var stages []*domain.Stage
		var elements []*domain.Element

		for i := 0; i < numStages; i++ {
			sStart := rng.Intn(totalDays)
			sEnd := sStart + rng.Intn(totalDays-sStart)
			var memberIDs []string

			numMembers := rng.Intn(5)
			for j := 0; j < numMembers; j++ {
				eStart := rng.Intn(totalDays)
				var opts []testutil.ElementOption
				if rng.Intn(2) == 1 {
					span := rng.Intn(totalDays - eStart)
					opts = append(opts, testutil.WithElementEnd(testutil.Day(eStart+span)))
				}
				e := testutil.NewTestElement("p-1",
					fmt.Sprintf("s%d-e%d", i, j), testutil.Day(eStart), opts...)
				elements = append(elements, e)
				memberIDs = append(memberIDs, e.ID)
			}

			stages = append(stages, testutil.NewTestStage("p-1",
				fmt.Sprintf("stage-%d", i),
				testutil.Day(sStart), testutil.Day(sEnd),
				testutil.WithStageElements(memberIDs...)))
		}

		days, err := AggregateDays(testutil.Day(0), testutil.Day(totalDays-1),
			elements, nil, nil, 10)
		require.NoError(t, err)

		rows := PackRows(testutil.Day(0), testutil.Day(totalDays-1),
			days, stages, elements)

		for r, row := range rows {
			for i, it := range row.Items {
				assert.True(t, it.Resolved(),
					"trial %d row %d item %d: unplaceable items must never reach a row", trial, r, i)
				assert.GreaterOrEqual(t, it.StartIndex, 0,
					"trial %d row %d item %d: start on board", trial, r, i)
				assert.Less(t, it.EndIndex, totalDays,
					"trial %d row %d item %d: end on board", trial, r, i)
				assert.LessOrEqual(t, it.StartIndex, it.EndIndex,
					"trial %d row %d item %d: span ordered", trial, r, i)

				if i > 0 {
					prev := row.Items[i-1]
					assert.LessOrEqual(t, prev.EndIndex+1, it.StartIndex,
						"trial %d row %d: items %d and %d overlap", trial, r, i-1, i)
				}
			}
		}
	}
}

// TestPackRows_Invariants_MembersNeverAboveStage verifies the placement
// floor: an element's row is never above the row of the stage it belongs to.
func TestPackRows_Invariants_MembersNeverAboveStage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		totalDays := rng.Intn(50) + 20
		numStages := rng.Intn(5) + 2

		var stages []*domain.Stage
		var elements []*domain.Element

		for i := 0; i < numStages; i++ {
			sStart := rng.Intn(totalDays)
			sEnd := sStart + rng.Intn(totalDays-sStart)
			var memberIDs []string
			for j := 0; j < rng.Intn(4)+1; j++ {
				e := testutil.NewTestElement("p-1",
					fmt.Sprintf("s%d-e%d", i, j),
					testutil.Day(rng.Intn(totalDays)))
				elements = append(elements, e)
				memberIDs = append(memberIDs, e.ID)
			}
			stages = append(stages, testutil.NewTestStage("p-1",
				fmt.Sprintf("stage-%d", i),
				testutil.Day(sStart), testutil.Day(sEnd),
				testutil.WithStageElements(memberIDs...)))
		}

		days, err := AggregateDays(testutil.Day(0), testutil.Day(totalDays-1),
			elements, nil, nil, 10)
		require.NoError(t, err)

		rows := PackRows(testutil.Day(0), testutil.Day(totalDays-1),
			days, stages, elements)

		stageRow := make(map[string]int)
		for r, row := range rows {
			for _, it := range row.Items {
				if it.Container {
					stageRow[it.ID] = r
				}
			}
		}
		for r, row := range rows {
			for _, it := range row.Items {
				if it.Container || it.ParentStageID == "" {
					continue
				}
				sr, ok := stageRow[it.ParentStageID]
				if !ok {
					continue // stage itself was off the board
				}
				assert.GreaterOrEqual(t, r, sr,
					"trial %d: element %s drawn above its stage", trial, it.Label)
			}
		}
	}
}
