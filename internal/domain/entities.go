package domain

import "time"

// DateLayout is the canonical day-granular date representation used for
// map keys, persistence, and import files.
const DateLayout = "2006-01-02"

// DateKey normalizes a time to its canonical YYYY-MM-DD key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DaysBetween returns the number of whole days from a to b.
// Negative when b is before a. Both times are truncated to midnight UTC
// before subtraction so DST and sub-day offsets cannot skew the count.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)).Hours() / 24)
}

// Midnight truncates a time to 00:00 UTC of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Plan is the top-level schedule header: the date range the board covers
// and the capacity ceiling applied to every day.
type Plan struct {
	ID              string
	Name            string
	StartDate       time.Time
	EndDate         time.Time
	CapacityCeiling int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stage is a container item. Its ElementIDs list the member elements in
// display order; members are packed immediately after their stage.
type Stage struct {
	ID         string
	PlanID     string
	Name       string
	Kind       StageKind
	StartDate  time.Time
	EndDate    time.Time
	Color      string
	Progress   float64 // 0..100
	OrderIndex int
	ElementIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Element is a leaf item: a single activity, deliverable, or task.
// EndDate is nil for single-day elements.
type Element struct {
	ID       string
	PlanID   string
	Label    string
	Kind     ElementKind
	Status   ElementStatus
	Date     time.Time
	EndDate  *time.Time
	Progress float64 // 0..100
	Color    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Span returns the element's inclusive [start, end] dates.
func (e *Element) Span() (time.Time, time.Time) {
	if e.EndDate != nil {
		return e.Date, *e.EndDate
	}
	return e.Date, e.Date
}

// Capacity is the recorded workload figures for one calendar day.
type Capacity struct {
	PlanID      string
	Date        time.Time
	Effective   float64
	Busy        float64
	Completed   float64
	WeatherIcon string
}

// CompletionMark records that an element was completed on a given day,
// independently of where the element itself is scheduled.
type CompletionMark struct {
	PlanID    string
	ElementID string
	Date      time.Time
}
