// Package metricdata cleans and validates raw telemetry samples before
// they are allowed anywhere near a chart.
//
// Validation failures are always scoped to a single metric; a broken
// metric never fails the batch it arrived in. Callers are expected to
// drop the offender and keep going.
package metricdata

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Structural error classes. Validate wraps these with the metric name,
// so callers classify with errors.Is.
var (
	// ErrEmptyData means the value or timestamp array is empty.
	ErrEmptyData = errors.New("empty data arrays")

	// ErrLengthMismatch means the value and timestamp arrays differ
	// in length, so the sample cannot be interpreted as a series.
	ErrLengthMismatch = errors.New("value/timestamp length mismatch")

	// ErrNoFiniteValues means every value is NaN or infinite.
	ErrNoFiniteValues = errors.New("no finite values")

	// ErrUnorderedTimestamps means a later timestamp strictly
	// precedes an earlier one beyond the jitter tolerance. Charts
	// assume monotonic time, so this is fatal rather than a warning.
	ErrUnorderedTimestamps = errors.New("unordered timestamps")
)

// orderJitterTolerance is how far backwards a timestamp may step before
// the sample is rejected outright. CloudWatch occasionally returns
// adjacent datapoints with sub-second wobble; anything worse is broken.
const orderJitterTolerance = time.Second

// staleCutoff flags datapoints older than a year. Providers retain at
// most 15 months, so anything past a year is suspect.
const staleCutoff = 365 * 24 * time.Hour

// Report is the outcome of validating one raw metric. It is created
// once and never mutated.
type Report struct {
	Metric   string
	Err      error
	Warnings []string
}

// Valid reports whether the metric survived structural validation.
func (r Report) Valid() bool { return r.Err == nil }

// Validate checks one raw metric's parallel arrays for structural
// problems. Fatal problems are returned in Report.Err; everything
// recoverable is collected as warnings.
func Validate(name string, values []float64, timestamps []time.Time) Report {
	r := Report{Metric: name}

	if len(values) == 0 || len(timestamps) == 0 {
		r.Err = fmt.Errorf("metric %q: %w", name, ErrEmptyData)
		return r
	}

	if len(values) != len(timestamps) {
		r.Err = fmt.Errorf("metric %q: %w (values=%d, timestamps=%d)",
			name, ErrLengthMismatch, len(values), len(timestamps))
		return r
	}

	finite := 0
	for _, v := range values {
		if isFinite(v) {
			finite++
		}
	}
	if finite == 0 {
		r.Err = fmt.Errorf("metric %q: %w", name, ErrNoFiniteValues)
		return r
	}
	if finite < len(values) {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"%d of %d values are not finite", len(values)-finite, len(values)))
	}

	jittered := 0
	for i := 1; i < len(timestamps); i++ {
		if timestamps[i].Before(timestamps[i-1]) {
			if timestamps[i-1].Sub(timestamps[i]) > orderJitterTolerance {
				r.Err = fmt.Errorf("metric %q: %w at index %d",
					name, ErrUnorderedTimestamps, i)
				return r
			}
			jittered++
		}
	}
	if jittered > 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"%d timestamps are out of order within tolerance", jittered))
	}

	now := time.Now()
	stale, future := 0, 0
	for _, ts := range timestamps {
		switch {
		case now.Sub(ts) > staleCutoff:
			stale++
		case ts.After(now):
			future++
		}
	}
	if stale > 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"%d timestamps are older than one year", stale))
	}
	if future > 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"%d timestamps are in the future", future))
	}

	return r
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
