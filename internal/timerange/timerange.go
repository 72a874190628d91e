// Package timerange computes which sampling periods are legal for a
// chosen time span and keeps a previously chosen period valid as the
// span changes. Pure state and arithmetic; no I/O.
package timerange

import (
	"fmt"
	"time"
)

// Unit is the magnitude unit of a time range.
type Unit int

const (
	Minutes Unit = iota
	Hours
	Days
	Weeks
	Months
)

func (u Unit) String() string {
	switch u {
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	case Weeks:
		return "weeks"
	case Months:
		return "months"
	default:
		return "unknown"
	}
}

// Range is an immutable time span: replaced, never mutated in place.
// PeriodDays feeds the auto-period granularity for week/month spans.
type Range struct {
	Value      int
	Unit       Unit
	PeriodDays int
}

// New validates and builds a Range. Months are capped at 15 because
// that is the longest retention any supported provider offers.
func New(value int, unit Unit, periodDays int) (Range, error) {
	if value < 1 {
		return Range{}, fmt.Errorf("time range value must be at least 1, got %d", value)
	}
	if unit == Months && value > 15 {
		return Range{}, fmt.Errorf("months must not exceed 15, got %d", value)
	}
	if periodDays < 1 {
		return Range{}, fmt.Errorf("period days must be at least 1, got %d", periodDays)
	}
	return Range{Value: value, Unit: unit, PeriodDays: periodDays}, nil
}

// Duration converts the range to a concrete duration. Months are
// approximated as 30 days, matching provider query semantics.
func (r Range) Duration() time.Duration {
	switch r.Unit {
	case Minutes:
		return time.Duration(r.Value) * time.Minute
	case Hours:
		return time.Duration(r.Value) * time.Hour
	case Days:
		return time.Duration(r.Value) * 24 * time.Hour
	case Weeks:
		return time.Duration(r.Value) * 7 * 24 * time.Hour
	case Months:
		return time.Duration(r.Value) * 30 * 24 * time.Hour
	default:
		return 0
	}
}

// Option is one selectable entry in the time-range picker.
type Option struct {
	Label      string
	Value      int
	Unit       Unit
	PeriodDays int
}

// Range builds the Range this option stands for.
func (o Option) Range() Range {
	return Range{Value: o.Value, Unit: o.Unit, PeriodDays: o.PeriodDays}
}

// Options is the fixed picker table, finest first.
func Options() []Option {
	return []Option{
		{"1 minute", 1, Minutes, 1},
		{"3 minutes", 3, Minutes, 1},
		{"5 minutes", 5, Minutes, 1},
		{"15 minutes", 15, Minutes, 1},
		{"30 minutes", 30, Minutes, 1},
		{"45 minutes", 45, Minutes, 1},
		{"1 hour", 1, Hours, 1},
		{"2 hours", 2, Hours, 1},
		{"3 hours", 3, Hours, 1},
		{"6 hours", 6, Hours, 1},
		{"8 hours", 8, Hours, 1},
		{"12 hours", 12, Hours, 1},
		{"1 day", 1, Days, 1},
		{"2 days", 2, Days, 1},
		{"3 days", 3, Days, 1},
		{"4 days", 4, Days, 1},
		{"5 days", 5, Days, 1},
		{"6 days", 6, Days, 1},
		{"1 week", 1, Weeks, 7},
		{"2 weeks", 2, Weeks, 14},
		{"4 weeks", 4, Weeks, 28},
		{"6 weeks", 6, Weeks, 42},
		{"3 months", 3, Months, 90},
		{"6 months", 6, Months, 180},
		{"12 months", 12, Months, 365},
		{"15 months", 15, Months, 455},
	}
}

// DefaultOptionIndex is the picker entry selected at startup (1 hour).
const DefaultOptionIndex = 6
