package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/layout"
)

// boardChromeLines is the vertical space taken by everything that is not
// a row lane: title, day header, utilization line, and status bar.
const boardChromeLines = 4

var (
	styleBarContainer = lipgloss.NewStyle().Bold(true)
	styleBarDone      = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	styleCenterDay    = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)
)

func (m *boardModel) renderBoard() string {
	if m.err != nil {
		return formatter.StyleRed.Render("board: "+m.err.Error()) + "\n" +
			formatter.StyleDim.Render("press q to quit")
	}
	if m.data == nil {
		return formatter.StyleDim.Render("loading…")
	}
	if m.data.TotalDays() == 0 {
		return formatter.StyleDim.Render("empty plan") + "\n" +
			formatter.StyleDim.Render("press q to quit")
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteByte('\n')
	b.WriteString(m.renderDayHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderUtilization())
	b.WriteByte('\n')
	b.WriteString(m.renderLanes())
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m *boardModel) renderTitle() string {
	day := m.data.Days[m.centerIdx]
	title := formatter.StyleHeader.Render(m.data.Plan.Name)
	center := formatter.StyleFg.Render(day.Date.Format("Mon 02 Jan 2006"))
	return title + "  " + center
}

// renderDayHeader draws one column per materialized day: the day of
// month, styled by the day's alert level, with the centered day
// highlighted. A weather icon replaces the trailing pad when set.
func (m *boardModel) renderDayHeader() string {
	var b strings.Builder
	for i := m.visible.Start; i <= m.visible.End; i++ {
		day := m.data.Days[i]
		cell := fmt.Sprintf("%2d", day.Date.Day())
		style := formatter.AlertStyle(day.AlertLevel)
		if i == m.centerIdx {
			style = styleCenterDay
		}
		b.WriteString(style.Render(cell))
		if day.WeatherIcon != "" {
			b.WriteString(" " + day.WeatherIcon + " ")
		} else {
			b.WriteString(strings.Repeat(" ", boardCellsPerDay-2))
		}
	}
	return b.String()
}

// renderUtilization draws a one-character gauge per day.
func (m *boardModel) renderUtilization() string {
	var b strings.Builder
	for i := m.visible.Start; i <= m.visible.End; i++ {
		day := m.data.Days[i]
		b.WriteString(utilizationCell(day))
		b.WriteString(strings.Repeat(" ", boardCellsPerDay-1))
	}
	return b.String()
}

func utilizationCell(day *domain.DayRecord) string {
	u := day.Utilization()
	switch {
	case day.CapacityEffective <= 0:
		return formatter.StyleDim.Render("·")
	case u > 100:
		return formatter.StyleRed.Render("▲")
	case u > 80:
		return formatter.StyleYellow.Render("●")
	default:
		return formatter.StyleGreen.Render("●")
	}
}

// renderLanes draws the visible slice of row lanes, one terminal line
// per row, windowed vertically by the current scroll position.
func (m *boardModel) renderLanes() string {
	laneLines := m.height - boardChromeLines
	if laneLines < 1 {
		laneLines = 1
	}
	firstRow := int(m.vScroll / m.rowPitch())
	if firstRow < 0 {
		firstRow = 0
	}

	var b strings.Builder
	for line := 0; line < laneLines; line++ {
		r := firstRow + line
		if r < len(m.data.Rows) {
			b.WriteString(m.renderLane(m.data.Rows[r]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderLane draws one row: bars for each item clipped to the visible
// day range, gaps as spaces.
func (m *boardModel) renderLane(row *layout.Row) string {
	var b strings.Builder
	cursor := m.visible.Start // next day index to fill

	for _, it := range row.Items {
		if !it.Resolved() || it.EndIndex < m.visible.Start || it.StartIndex > m.visible.End {
			continue
		}
		start := it.StartIndex
		if start < m.visible.Start {
			start = m.visible.Start
		}
		end := it.EndIndex
		if end > m.visible.End {
			end = m.visible.End
		}
		if start > cursor {
			b.WriteString(strings.Repeat(" ", (start-cursor)*boardCellsPerDay))
		}
		b.WriteString(renderBar(it, (end-start+1)*boardCellsPerDay))
		cursor = end + 1
	}
	return b.String()
}

// renderBar draws one item as a fixed-width bar: the label padded or
// truncated to the bar's cell width, colored by the item's own color.
func renderBar(it *layout.Item, width int) string {
	if width < 1 {
		width = 1
	}
	label := " " + it.Label
	if lipgloss.Width(label) > width {
		runes := []rune(label)
		for len(runes) > 0 && lipgloss.Width(string(runes)) > width {
			runes = runes[:len(runes)-1]
		}
		label = string(runes)
	}
	if pad := width - lipgloss.Width(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}

	style := barStyle(it)
	return style.Render(label)
}

func barStyle(it *layout.Item) lipgloss.Style {
	style := lipgloss.NewStyle()
	if it.Color != "" {
		style = style.Background(lipgloss.Color(it.Color)).Foreground(formatter.ColorFg)
	} else {
		style = style.Background(lipgloss.Color("#3c3836")).Foreground(formatter.ColorFg)
	}
	if it.Container {
		style = style.Inherit(styleBarContainer)
	}
	if !it.Container && it.Progress >= 100 {
		style = style.Inherit(styleBarDone)
	}
	return style
}

func (m *boardModel) renderStatusBar() string {
	day := m.data.Days[m.centerIdx]

	stage := "—"
	if day.CurrentStage != nil {
		stage = day.CurrentStage.Name
	}
	left := fmt.Sprintf(" %s  days %d–%d  stage %s",
		day.Date.Format(domain.DateLayout), m.visible.Start, m.visible.End, stage)
	hints := "h/l scroll  j/k rows  g/G ends  r reload  q quit "

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(hints)
	if pad < 1 {
		pad = 1
	}
	return formatter.StyleDim.Render(left + strings.Repeat(" ", pad) + hints)
}
