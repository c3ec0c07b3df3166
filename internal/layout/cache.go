package layout

import (
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/domain"
)

// Inputs bundles everything the aggregator and packer consume.
type Inputs struct {
	Start           time.Time
	End             time.Time
	Elements        []*domain.Element
	Completions     []domain.CompletionMark
	Capacities      []*domain.Capacity
	Stages          []*domain.Stage
	CapacityCeiling int
}

// fingerprint is the structural identity of a set of inputs. Comparing
// lengths instead of deep content keeps invalidation O(1); in-place
// mutations that preserve list lengths are deliberately not detected.
type fingerprint struct {
	start       string
	end         string
	elements    int
	completions int
	capacities  int
	stages      int
	ceiling     int
}

func fingerprintOf(in Inputs) fingerprint {
	return fingerprint{
		start:       domain.DateKey(in.Start),
		end:         domain.DateKey(in.End),
		elements:    len(in.Elements),
		completions: len(in.Completions),
		capacities:  len(in.Capacities),
		stages:      len(in.Stages),
		ceiling:     in.CapacityCeiling,
	}
}

// Reporter receives computation failures swallowed at the cache boundary.
type Reporter func(op string, err error)

// Cache memoizes the day sequence and row packing for one set of inputs.
// Both memo slots share one fingerprint: any fingerprinted change rebuilds
// days and invalidates rows, so callers never have to remember a separate
// clear protocol for rows.
//
// Aggregation and packing failures never escape: the affected result
// degrades to empty and the error goes to the Reporter.
//
// Not safe for concurrent use; the board owns one Cache on its event loop.
type Cache struct {
	report Reporter

	valid bool
	fp    fingerprint
	days  []*domain.DayRecord

	rowsValid bool
	rows      []*Row
}

// NewCache returns an empty cache. A nil reporter discards errors.
func NewCache(report Reporter) *Cache {
	if report == nil {
		report = func(string, error) {}
	}
	return &Cache{report: report}
}

// Days returns the day sequence for the inputs, recomputing only when the
// input fingerprint changed since the previous call. Unchanged inputs get
// the previously computed slice back by reference.
func (c *Cache) Days(in Inputs) []*domain.DayRecord {
	fp := fingerprintOf(in)
	if c.valid && fp == c.fp {
		return c.days
	}

	days, err := c.computeDays(in)
	if err != nil {
		c.report("aggregate_days", err)
		days = nil
	}

	c.fp = fp
	c.valid = true
	c.days = days
	c.rowsValid = false
	c.rows = nil
	return c.days
}

// Rows returns the packed rows for the inputs. The row memo is tied to the
// same fingerprint as Days: a fingerprint change on either call drops both.
func (c *Cache) Rows(in Inputs) []*Row {
	days := c.Days(in)
	if c.rowsValid {
		return c.rows
	}

	rows, err := c.computeRows(in, days)
	if err != nil {
		c.report("pack_rows", err)
		rows = nil
	}

	c.rowsValid = true
	c.rows = rows
	return c.rows
}

// Clear drops both memo slots so the next call recomputes from scratch.
func (c *Cache) Clear() {
	c.valid = false
	c.days = nil
	c.rowsValid = false
	c.rows = nil
}

// computeDays runs the aggregator, converting panics into errors so a bad
// record can never take down the caller.
func (c *Cache) computeDays(in Inputs) (days []*domain.DayRecord, err error) {
	defer func() {
		if p := recover(); p != nil {
			days = nil
			err = fmt.Errorf("day aggregation panicked: %v", p)
		}
	}()
	return AggregateDays(in.Start, in.End, in.Elements, in.Completions, in.Capacities, in.CapacityCeiling)
}

func (c *Cache) computeRows(in Inputs, days []*domain.DayRecord) (rows []*Row, err error) {
	defer func() {
		if p := recover(); p != nil {
			rows = nil
			err = fmt.Errorf("row packing panicked: %v", p)
		}
	}()
	return PackRows(in.Start, in.End, days, in.Stages, in.Elements), nil
}
