package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
)

// RenderDayTable renders one line per day record: date, utilization bar,
// per-kind counters, and the current stage name when set.
func RenderDayTable(days []*domain.DayRecord) string {
	if len(days) == 0 {
		return StyleDim.Render("no days in range")
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%-12s %-14s %-22s %s",
		"DATE", "LOAD", "A/D/T (done)", "STAGE")))
	b.WriteString("\n")

	for _, d := range days {
		b.WriteString(RenderDayLine(d))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderDayLine renders a single day record row.
func RenderDayLine(d *domain.DayRecord) string {
	date := d.Date.Format(domain.DateLayout)

	load := StyleDim.Render("     -")
	if d.CapacityEffective > 0 {
		load = AlertStyle(d.AlertLevel).Render(fmt.Sprintf("%5.0f%%", d.Utilization()))
	}

	counters := fmt.Sprintf("%d/%d/%d (%d done, %d open)",
		d.ActivityTotal, d.DeliverableTotal, d.TaskTotal,
		d.ElementCompletedCount, d.ElementPendingCount)

	stage := ""
	if d.CurrentStage != nil {
		stage = StyleBlue.Render(d.CurrentStage.Name)
	}

	icon := d.WeatherIcon
	if icon != "" {
		icon = " " + icon
	}

	return fmt.Sprintf("%-12s %-14s %-22s %s%s", date, load, counters, stage, icon)
}
