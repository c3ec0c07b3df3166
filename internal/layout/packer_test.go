package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/testutil"
)

func boardDays(t *testing.T, from, to int) []*domain.DayRecord {
	t.Helper()
	days, err := AggregateDays(testutil.Day(from), testutil.Day(to), nil, nil, nil, 10)
	require.NoError(t, err)
	return days
}

func TestPackRows_EmptyBoard(t *testing.T) {
	rows := PackRows(testutil.Day(0), testutil.Day(0), nil, nil, nil)
	assert.Nil(t, rows)
}

func TestPackRows_SingleStageSingleRow(t *testing.T) {
	days := boardDays(t, 0, 10)
	s := testutil.NewTestStage("p-1", "Build", testutil.Day(2), testutil.Day(6))

	rows := PackRows(testutil.Day(0), testutil.Day(10), days, []*domain.Stage{s}, nil)

	require.Len(t, rows, 1)
	require.Len(t, rows[0].Items, 1)
	it := rows[0].Items[0]
	assert.True(t, it.Container)
	assert.Equal(t, 2, it.StartIndex)
	assert.Equal(t, 6, it.EndIndex)
}

func TestPackRows_MemberFollowsItsStage(t *testing.T) {
	days := boardDays(t, 0, 10)
	e := testutil.NewTestElement("p-1", "task", testutil.Day(8))
	s := testutil.NewTestStage("p-1", "Build", testutil.Day(2), testutil.Day(6),
		testutil.WithStageElements(e.ID))

	rows := PackRows(testutil.Day(0), testutil.Day(10), days,
		[]*domain.Stage{s}, []*domain.Element{e})

	// Stage ends at 6, member starts at 8: 6+1 <= 8, so they share a row.
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Items, 2)
	assert.True(t, rows[0].Items[0].Container)
	assert.Equal(t, e.ID, rows[0].Items[1].ID)
}

func TestPackRows_AdjacencyBoundary(t *testing.T) {
	days := boardDays(t, 0, 20)

	// An item ending at index 6 tolerates a candidate starting at 7;
	// one ending at 7 vetoes it.
	eTouch := testutil.NewTestElement("p-1", "touch", testutil.Day(7))
	eGap := testutil.NewTestElement("p-1", "gap", testutil.Day(7))
	s1 := testutil.NewTestStage("p-1", "A", testutil.Day(0), testutil.Day(6),
		testutil.WithStageElements(eTouch.ID))
	s2 := testutil.NewTestStage("p-1", "B", testutil.Day(0), testutil.Day(7),
		testutil.WithStageElements(eGap.ID))

	rows := PackRows(testutil.Day(0), testutil.Day(20), days,
		[]*domain.Stage{s1}, []*domain.Element{eTouch})
	require.Len(t, rows, 1, "end 6 and start 7 may share: the span ends strictly before the start")

	rows = PackRows(testutil.Day(0), testutil.Day(20), days,
		[]*domain.Stage{s2}, []*domain.Element{eGap})
	require.Len(t, rows, 2, "end 7 and start 7 overlap and must split rows")
}

func TestPackRows_LaterStageNeverAboveEarlierStage(t *testing.T) {
	days := boardDays(t, 0, 30)

	// Stage A occupies [2,10]; its member at 11 fits back into row 0.
	// Stage B [0,20] overlaps everything in row 0 and opens row 1; its
	// members may never be placed above row 1 even where row 0 has room.
	eA := testutil.NewTestElement("p-1", "a1", testutil.Day(11))
	eB := testutil.NewTestElement("p-1", "b1", testutil.Day(25))
	sA := testutil.NewTestStage("p-1", "A", testutil.Day(2), testutil.Day(10),
		testutil.WithStageElements(eA.ID))
	sB := testutil.NewTestStage("p-1", "B", testutil.Day(0), testutil.Day(20),
		testutil.WithStageElements(eB.ID))

	rows := PackRows(testutil.Day(0), testutil.Day(30), days,
		[]*domain.Stage{sA, sB}, []*domain.Element{eA, eB})

	require.Len(t, rows, 2)

	assert.Equal(t, sA.ID, rows[0].Items[0].ID)
	assert.Equal(t, eA.ID, rows[0].Items[1].ID)

	assert.Equal(t, sB.ID, rows[1].Items[0].ID)
	// Row 0 has free space from index 13 on, but stage B claimed row 1,
	// so b1 (start 25) lands beside its stage rather than above it.
	assert.Equal(t, eB.ID, rows[1].Items[1].ID)
}

func TestPackRows_MembersSortedByStartDate(t *testing.T) {
	days := boardDays(t, 0, 20)

	late := testutil.NewTestElement("p-1", "late", testutil.Day(15))
	early := testutil.NewTestElement("p-1", "early", testutil.Day(6))
	s := testutil.NewTestStage("p-1", "S", testutil.Day(0), testutil.Day(4),
		testutil.WithStageElements(late.ID, early.ID))

	rows := PackRows(testutil.Day(0), testutil.Day(20), days,
		[]*domain.Stage{s}, []*domain.Element{early, late})

	require.Len(t, rows, 1)
	require.Len(t, rows[0].Items, 3)
	assert.Equal(t, "early", rows[0].Items[1].Label)
	assert.Equal(t, "late", rows[0].Items[2].Label)
}

func TestPackRows_DuplicateMemberRefsCollapsed(t *testing.T) {
	days := boardDays(t, 0, 10)
	e := testutil.NewTestElement("p-1", "once", testutil.Day(8))
	s := testutil.NewTestStage("p-1", "S", testutil.Day(0), testutil.Day(4),
		testutil.WithStageElements(e.ID, e.ID, e.ID))

	rows := PackRows(testutil.Day(0), testutil.Day(10), days,
		[]*domain.Stage{s}, []*domain.Element{e})

	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Items, 2)
}

func TestPackRows_OrphanElementsNotPacked(t *testing.T) {
	days := boardDays(t, 0, 10)
	orphan := testutil.NewTestElement("p-1", "orphan", testutil.Day(3))

	rows := PackRows(testutil.Day(0), testutil.Day(10), days,
		nil, []*domain.Element{orphan})

	assert.Nil(t, rows, "elements outside any stage stay off the row grid")
}

func TestPackRows_EarlyStartClampedToRange(t *testing.T) {
	days := boardDays(t, 0, 10)
	s := testutil.NewTestStage("p-1", "S", testutil.Day(-5), testutil.Day(4))

	rows := PackRows(testutil.Day(0), testutil.Day(10), days,
		[]*domain.Stage{s}, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Items[0].StartIndex)
	assert.Equal(t, 4, rows[0].Items[0].EndIndex)
}

func TestPackRows_UnresolvableSpanDropped(t *testing.T) {
	days := boardDays(t, 0, 10)
	s := testutil.NewTestStage("p-1", "S", testutil.Day(2), testutil.Day(40))

	rows := PackRows(testutil.Day(0), testutil.Day(10), days,
		[]*domain.Stage{s}, nil)

	assert.Nil(t, rows, "an end date off the board leaves the span unresolved")
}

func TestPackRows_PatchesCurrentStage(t *testing.T) {
	days := boardDays(t, 0, 10)
	s1 := testutil.NewTestStage("p-1", "First", testutil.Day(0), testutil.Day(4))
	s2 := testutil.NewTestStage("p-1", "Second", testutil.Day(3), testutil.Day(8))

	PackRows(testutil.Day(0), testutil.Day(10), days,
		[]*domain.Stage{s1, s2}, nil)

	require.NotNil(t, days[2].CurrentStage)
	assert.Equal(t, "First", days[2].CurrentStage.Name)

	// Overlap resolves to the first stage in input order.
	require.NotNil(t, days[3].CurrentStage)
	assert.Equal(t, "First", days[3].CurrentStage.Name)

	require.NotNil(t, days[6].CurrentStage)
	assert.Equal(t, "Second", days[6].CurrentStage.Name)

	assert.Nil(t, days[10].CurrentStage)
}

func TestPackRows_ElementInheritsStageColor(t *testing.T) {
	days := boardDays(t, 0, 10)
	e := testutil.NewTestElement("p-1", "e", testutil.Day(8))
	s := testutil.NewTestStage("p-1", "S", testutil.Day(0), testutil.Day(4),
		testutil.WithStageColor("#8ec07c"),
		testutil.WithStageElements(e.ID))

	rows := PackRows(testutil.Day(0), testutil.Day(10), days,
		[]*domain.Stage{s}, []*domain.Element{e})

	require.Len(t, rows, 1)
	assert.Equal(t, "#8ec07c", rows[0].Items[1].Color)
}

func TestPackRows_MultiDayElementSpan(t *testing.T) {
	days := boardDays(t, 0, 10)
	e := testutil.NewTestElement("p-1", "span", testutil.Day(6),
		testutil.WithElementEnd(testutil.Day(9)))
	s := testutil.NewTestStage("p-1", "S", testutil.Day(0), testutil.Day(4),
		testutil.WithStageElements(e.ID))

	rows := PackRows(testutil.Day(0), testutil.Day(10), days,
		[]*domain.Stage{s}, []*domain.Element{e})

	require.Len(t, rows, 1)
	it := rows[0].Items[1]
	assert.Equal(t, 6, it.StartIndex)
	assert.Equal(t, 9, it.EndIndex)
}
