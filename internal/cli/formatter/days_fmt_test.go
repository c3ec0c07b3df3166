package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/planboard/internal/domain"
)

func sampleDay() *domain.DayRecord {
	return &domain.DayRecord{
		Date:                  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		CapacityEffective:     10,
		BusyEffective:         8.5,
		AlertLevel:            domain.AlertWarning,
		ActivityTotal:         2,
		DeliverableTotal:      1,
		TaskTotal:             4,
		ElementCompletedCount: 3,
		ElementPendingCount:   4,
		WeatherIcon:           "☀",
		CurrentStage:          &domain.Stage{Name: "Build"},
	}
}

func TestRenderDayLine_CarriesAllFields(t *testing.T) {
	out := RenderDayLine(sampleDay())

	assert.Contains(t, out, "2024-01-05")
	assert.Contains(t, out, "85%")
	assert.Contains(t, out, "2/1/4 (3 done, 4 open)")
	assert.Contains(t, out, "Build")
	assert.Contains(t, out, "☀")
}

func TestRenderDayLine_NoCapacityShowsDash(t *testing.T) {
	d := sampleDay()
	d.CapacityEffective = 0

	out := RenderDayLine(d)
	assert.Contains(t, out, "-")
	assert.NotContains(t, out, "%")
}

func TestRenderDayTable_HeaderAndRows(t *testing.T) {
	out := RenderDayTable([]*domain.DayRecord{sampleDay(), sampleDay()})

	assert.Contains(t, out, "DATE")
	assert.Equal(t, 3, strings.Count(out, "\n"), "header plus one line per day")
}

func TestRenderDayTable_Empty(t *testing.T) {
	out := RenderDayTable(nil)
	assert.Contains(t, out, "no days")
}

func TestAlertStyle_MapsLevels(t *testing.T) {
	assert.Equal(t, StyleRed, AlertStyle(domain.AlertCritical))
	assert.Equal(t, StyleYellow, AlertStyle(domain.AlertWarning))
	assert.Equal(t, StyleDim, AlertStyle(domain.AlertNone))
}

func TestStatusStyle_CompletedIsGreen(t *testing.T) {
	assert.Equal(t, StyleGreen, StatusStyle(domain.ElementValidated))
	assert.Equal(t, StyleGreen, StatusStyle(domain.ElementFinished))
	assert.Equal(t, StyleBlue, StatusStyle(domain.ElementInProgress))
	assert.Equal(t, StyleFg, StatusStyle(domain.ElementPending))
}
