package domain

import "time"

// DayRecord is the per-day summary the board renders one column from.
// A day sequence always has exactly DaysBetween(start,end)+1 records,
// strictly ordered by date with no gaps or duplicates.
//
// Records are immutable once aggregated, except CurrentStage, which is
// patched in a second pass after row packing.
type DayRecord struct {
	Date time.Time

	// Workload figures copied from the day's capacity record.
	CapacityMax        int
	CapacityEffective  float64
	BusyEffective      float64
	CompletedEffective float64
	WeatherIcon        string
	AlertLevel         AlertLevel

	// Per-kind counters over the day's distinct elements.
	ActivityTotal        int
	ActivityCompleted    int
	DeliverableTotal     int
	DeliverableCompleted int
	TaskTotal            int
	TaskCompleted        int

	ElementCompletedCount int
	ElementPendingCount   int

	// AssignedIDs holds every entity ID seen on this day,
	// insertion-ordered and deduplicated.
	AssignedIDs []string

	// CurrentStage is the first container stage whose span covers this day.
	CurrentStage *Stage
}

// HasAssigned reports whether the given ID is already recorded for the day.
func (d *DayRecord) HasAssigned(id string) bool {
	for _, v := range d.AssignedIDs {
		if v == id {
			return true
		}
	}
	return false
}

// AddAssigned appends an ID unless it is already present.
func (d *DayRecord) AddAssigned(id string) {
	if id == "" || d.HasAssigned(id) {
		return
	}
	d.AssignedIDs = append(d.AssignedIDs, id)
}

// Utilization returns busy/capacity as a percentage, 0 when capacity is
// not positive.
func (d *DayRecord) Utilization() float64 {
	if d.CapacityEffective <= 0 {
		return 0
	}
	return d.BusyEffective / d.CapacityEffective * 100
}
