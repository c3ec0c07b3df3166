package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planboard/internal/config"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/layout"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/alexanderramin/planboard/internal/testutil"
)

type stubTimeline struct {
	data        *service.TimelineData
	invalidated int
}

func (s *stubTimeline) GetTimeline(context.Context, string) (*service.TimelineData, error) {
	return s.data, nil
}

func (s *stubTimeline) Invalidate() { s.invalidated++ }

func boardTestData(t *testing.T, totalDays int) *service.TimelineData {
	t.Helper()
	plan := testutil.NewTestPlan("Board", testutil.Day(0), testutil.Day(totalDays-1))

	e := testutil.NewTestElement(plan.ID, "task", testutil.Day(3))
	stage := testutil.NewTestStage(plan.ID, "Build", testutil.Day(0), testutil.Day(9),
		testutil.WithStageElements(e.ID))

	days, err := layout.AggregateDays(plan.StartDate, plan.EndDate,
		[]*domain.Element{e}, nil, nil, plan.CapacityCeiling)
	require.NoError(t, err)
	rows := layout.PackRows(plan.StartDate, plan.EndDate, days,
		[]*domain.Stage{stage}, []*domain.Element{e})

	return &service.TimelineData{Plan: plan, Days: days, Rows: rows}
}

func newTestBoardModel(t *testing.T, totalDays int) (*boardModel, *stubTimeline) {
	t.Helper()
	stub := &stubTimeline{data: boardTestData(t, totalDays)}
	app := &App{Timeline: stub, Display: config.DefaultDisplay()}

	m := newBoardModel(app, stub.data.Plan.ID, &msgSender{})
	t.Cleanup(func() {
		m.windowDeb.Cancel()
		m.autoDeb.Cancel()
	})

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(*boardModel)
	model, _ = m.Update(timelineLoadedMsg{data: stub.data})
	m = model.(*boardModel)

	// The initial load recenters and arms the follow debounce; drop it so
	// tests observe only their own arming.
	m.windowDeb.Cancel()
	m.autoDeb.Cancel()
	return m, stub
}

func TestBoardModel_LoadRecomputesWindow(t *testing.T) {
	m, _ := newTestBoardModel(t, 120)

	assert.Equal(t, 120, m.totalDays())
	assert.True(t, m.visible.Contains(m.centerIdx))
	assert.GreaterOrEqual(t, m.visible.Start, 0)
	assert.Less(t, m.visible.End, 120)
}

func TestBoardModel_ScrollKeysMoveOffsetImmediately(t *testing.T) {
	m, _ := newTestBoardModel(t, 120)

	before := m.scrollOffset
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = model.(*boardModel)

	assert.Greater(t, m.scrollOffset, before, "offset moves without waiting for the tick")
	assert.True(t, m.windowDeb.Pending(), "the windowing recompute is armed, not run inline")
}

func TestBoardModel_OffsetClampedAtEnds(t *testing.T) {
	m, _ := newTestBoardModel(t, 120)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	m = model.(*boardModel)
	assert.Zero(t, m.scrollOffset, "scrolling left at the origin stays put")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	m = model.(*boardModel)
	assert.Equal(t, m.maxScrollOffset(), m.scrollOffset)
}

func TestBoardModel_WindowTickRecentersAndArmsAutoScroll(t *testing.T) {
	m, _ := newTestBoardModel(t, 120)

	m.scrollOffset = m.maxScrollOffset()
	model, _ := m.Update(windowTickMsg{})
	m = model.(*boardModel)

	// max offset 4000, viewport 800 wide, stride 40: (4000+400)/40 = 110.
	assert.Equal(t, 110, m.centerIdx)
	assert.True(t, m.visible.Contains(110))
	assert.True(t, m.autoDeb.Pending(), "a center change arms the auto-scroll debounce")
}

func TestBoardModel_WindowTickUnchangedCenterLeavesAutoScrollAlone(t *testing.T) {
	m, _ := newTestBoardModel(t, 120)

	model, _ := m.Update(windowTickMsg{})
	m = model.(*boardModel)

	assert.False(t, m.autoDeb.Pending(), "same center must not re-arm the debounce")
}

func TestBoardModel_AutoScrollMovesToTargetRow(t *testing.T) {
	m, _ := newTestBoardModel(t, 120)

	m.vScroll = 500
	m.centerIdx = 3 // inside the stage's row span
	model, _ := m.Update(autoScrollTickMsg{})
	m = model.(*boardModel)

	assert.Zero(t, m.vScroll, "row 0 covers the center, so the board scrolls to it")
	assert.Nil(t, m.userScroll)
}

func TestBoardModel_ManualScrollSuppressesFollow(t *testing.T) {
	m, _ := newTestBoardModel(t, 120)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = model.(*boardModel)
	require.NotNil(t, m.userScroll)

	m.centerIdx = 3
	model, _ = m.Update(autoScrollTickMsg{})
	m = model.(*boardModel)

	// The user position (beyond the row-0 target of 0) wins; the marker
	// stays so later decisions keep yielding.
	assert.NotNil(t, m.userScroll)
}

func TestBoardModel_ReloadInvalidatesAndRefetches(t *testing.T) {
	m, stub := newTestBoardModel(t, 120)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = model.(*boardModel)

	assert.Equal(t, 1, stub.invalidated)
	require.NotNil(t, cmd)
	msg := cmd()
	loaded, ok := msg.(timelineLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, stub.data, loaded.data)
}

func TestBoardModel_QuitCancelsPendingWork(t *testing.T) {
	m, _ := newTestBoardModel(t, 120)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = model.(*boardModel)
	require.True(t, m.windowDeb.Pending())

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = model.(*boardModel)

	assert.False(t, m.windowDeb.Pending())
	assert.False(t, m.autoDeb.Pending())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBoardModel_ViewRendersDaysAndBars(t *testing.T) {
	m, _ := newTestBoardModel(t, 120)

	out := m.View()
	assert.Contains(t, out, "Board", "plan name in the title")
	assert.Contains(t, out, "Build", "stage bar label visible at the origin")
}
