package cli

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/planboard/internal/config"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/alexanderramin/planboard/internal/throttle"
	"github.com/alexanderramin/planboard/internal/window"
)

// boardCellsPerDay is how many terminal columns one day occupies on
// screen. The scroll math runs in the configured virtual units; this is
// the only place the two scales meet.
const boardCellsPerDay = 5

// ── messages ────────────────────────────────────────────────────────────────

// windowTickMsg fires after the windowing throttle elapses: recompute the
// center day and the materialized range.
type windowTickMsg struct{}

// autoScrollTickMsg fires after the auto-scroll debounce elapses: decide
// whether the vertical position should follow the centered day.
type autoScrollTickMsg struct{}

// timelineLoadedMsg delivers a (re)loaded timeline to the model.
type timelineLoadedMsg struct {
	data *service.TimelineData
	err  error
}

// reloadMsg asks the model to fetch the timeline again, e.g. after the
// database file changed under watch mode.
type reloadMsg struct{}

// msgSender hands messages into a running program from timer goroutines.
// The program is attached after construction, so callbacks armed before
// Run starts do not dereference nil.
type msgSender struct {
	mu sync.Mutex
	p  *tea.Program
}

func (s *msgSender) attach(p *tea.Program) {
	s.mu.Lock()
	s.p = p
	s.mu.Unlock()
}

func (s *msgSender) send(msg tea.Msg) {
	s.mu.Lock()
	p := s.p
	s.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// ── keymap ──────────────────────────────────────────────────────────────────

type boardKeyMap struct {
	Quit      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageLeft  key.Binding
	PageRight key.Binding
	Start     key.Binding
	End       key.Binding
	Up        key.Binding
	Down      key.Binding
	Reload    key.Binding
}

func defaultBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
		Left:      key.NewBinding(key.WithKeys("h", "left")),
		Right:     key.NewBinding(key.WithKeys("l", "right")),
		PageLeft:  key.NewBinding(key.WithKeys("pgup", "H")),
		PageRight: key.NewBinding(key.WithKeys("pgdown", "L")),
		Start:     key.NewBinding(key.WithKeys("g", "home")),
		End:       key.NewBinding(key.WithKeys("G", "end")),
		Up:        key.NewBinding(key.WithKeys("k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down")),
		Reload:    key.NewBinding(key.WithKeys("r")),
	}
}

// ── model ───────────────────────────────────────────────────────────────────

// boardModel is the bubbletea Model for the timeline board. Horizontal
// input mutates scrollOffset immediately; everything derived from it
// (center day, visible range, vertical follow) recomputes on throttled
// ticks so a fast scroll burst costs a bounded number of layouts.
type boardModel struct {
	app     *App
	planID  string
	display config.Display

	data *service.TimelineData
	err  error

	width  int
	height int

	// Horizontal state, in virtual units.
	scrollOffset float64
	prevOffset   float64

	centerIdx int
	visible   window.Range

	// Vertical state, in virtual units.
	vScroll    float64
	userScroll *float64
	searchFrom int

	keys boardKeyMap

	windowDeb *throttle.Debouncer
	autoDeb   *throttle.Debouncer
	sender    *msgSender

	quitting bool
}

func newBoardModel(app *App, planID string, sender *msgSender) *boardModel {
	d := app.Display
	return &boardModel{
		app:       app,
		planID:    planID,
		display:   d,
		keys:      defaultBoardKeyMap(),
		windowDeb: throttle.NewDebouncer(time.Duration(d.ScrollThrottleMs) * time.Millisecond),
		autoDeb:   throttle.NewDebouncer(time.Duration(d.AutoScrollDebounceMs) * time.Millisecond),
		sender:    sender,
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.loadTimeline()
}

func (m *boardModel) loadTimeline() tea.Cmd {
	return func() tea.Msg {
		data, err := m.app.Timeline.GetTimeline(context.Background(), m.planID)
		return timelineLoadedMsg{data: data, err: err}
	}
}

// stride is the horizontal distance between day columns in virtual units.
func (m *boardModel) stride() float64 {
	return m.display.DayWidth - m.display.DayMargin
}

// viewportWidth converts the terminal width into virtual units.
func (m *boardModel) viewportWidth() float64 {
	return float64(m.width) * m.stride() / boardCellsPerDay
}

// rowPitch is the vertical distance between row lanes in virtual units.
func (m *boardModel) rowPitch() float64 {
	return m.display.RowHeight + 2*m.display.RowMargin
}

// viewportHeight is the vertical extent available to row lanes, in
// virtual units.
func (m *boardModel) viewportHeight() float64 {
	lines := m.height - boardChromeLines
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * m.rowPitch()
}

func (m *boardModel) totalDays() int {
	if m.data == nil {
		return 0
	}
	return m.data.TotalDays()
}

func (m *boardModel) maxScrollOffset() float64 {
	max := float64(m.totalDays())*m.stride() - m.viewportWidth()
	if max < 0 {
		max = 0
	}
	return max
}

func (m *boardModel) maxVScroll() float64 {
	if m.data == nil {
		return 0
	}
	max := float64(len(m.data.Rows))*m.rowPitch() - m.viewportHeight()
	if max < 0 {
		max = 0
	}
	return max
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ── update ──────────────────────────────────────────────────────────────────

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recomputeWindow()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case windowTickMsg:
		m.recomputeWindow()
		return m, nil

	case autoScrollTickMsg:
		m.applyAutoScroll()
		return m, nil

	case timelineLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.data = msg.data
			m.recomputeWindow()
		}
		return m, nil

	case reloadMsg:
		return m, m.loadTimeline()
	}

	return m, nil
}

func (m *boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {

	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.windowDeb.Cancel()
		m.autoDeb.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.scrollBy(-m.stride())
	case key.Matches(msg, m.keys.Right):
		m.scrollBy(m.stride())
	case key.Matches(msg, m.keys.PageLeft):
		m.scrollBy(-m.viewportWidth())
	case key.Matches(msg, m.keys.PageRight):
		m.scrollBy(m.viewportWidth())
	case key.Matches(msg, m.keys.Start):
		m.scrollTo(0)
	case key.Matches(msg, m.keys.End):
		m.scrollTo(m.maxScrollOffset())

	case key.Matches(msg, m.keys.Up):
		m.userScrollBy(-m.rowPitch())
	case key.Matches(msg, m.keys.Down):
		m.userScrollBy(m.rowPitch())

	case key.Matches(msg, m.keys.Reload):
		m.app.Timeline.Invalidate()
		return m, m.loadTimeline()
	}

	return m, nil
}

// scrollBy moves the horizontal offset and arms the windowing throttle.
// The offset is live immediately; the derived recompute trails the input
// by at most one throttle window.
func (m *boardModel) scrollBy(delta float64) {
	m.scrollTo(m.scrollOffset + delta)
}

func (m *boardModel) scrollTo(offset float64) {
	m.scrollOffset = clampFloat(offset, 0, m.maxScrollOffset())
	m.windowDeb.Trigger(func() { m.sender.send(windowTickMsg{}) })
}

// userScrollBy moves the vertical position by hand. The position is
// remembered so the next auto-scroll decision can yield to it.
func (m *boardModel) userScrollBy(delta float64) {
	v := clampFloat(m.vScroll+delta, 0, m.maxVScroll())
	m.vScroll = v
	m.userScroll = &v
}

// recomputeWindow is the throttled windowing pass: derive the centered
// day and the materialized range from the current offset, and arm the
// auto-scroll debounce when the center moved.
func (m *boardModel) recomputeWindow() {
	total := m.totalDays()
	if total == 0 {
		m.centerIdx = 0
		m.visible = window.Range{}
		return
	}

	center := window.CenterDayIndex(m.scrollOffset, m.viewportWidth(),
		m.display.DayWidth, m.display.DayMargin, total)
	m.visible = window.VisibleRange(center, m.viewportWidth(),
		m.display.DayWidth, m.display.DayMargin, m.display.BufferDays, total)

	if center != m.centerIdx {
		m.centerIdx = center
		m.autoDeb.Trigger(func() { m.sender.send(autoScrollTickMsg{}) })
	}
}

// applyAutoScroll is the debounced vertical follow: move to the row
// covering the centered day unless the user has already scrolled past it.
func (m *boardModel) applyAutoScroll() {
	if m.data == nil {
		return
	}

	state := window.ComputeScrollState(window.ScrollInput{
		CurrentOffset:    m.scrollOffset,
		PreviousOffset:   m.prevOffset,
		CenterIndex:      m.centerIdx,
		Rows:             m.data.Rows,
		RowHeight:        m.display.RowHeight,
		RowMargin:        m.display.RowMargin,
		UserScrollOffset: m.userScroll,
		ViewportHeight:   m.viewportHeight(),
		SearchFrom:       m.searchFrom,
	})
	m.prevOffset = m.scrollOffset

	if state.TargetRow >= 0 {
		m.searchFrom = state.TargetRow
	}
	if state.EnableAutoScroll && state.TargetOffset != nil {
		m.vScroll = clampFloat(*state.TargetOffset, 0, m.maxVScroll())
		m.userScroll = nil
	}
}

func (m *boardModel) View() string {
	if m.quitting {
		return ""
	}
	return m.renderBoard()
}
