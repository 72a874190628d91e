package domain

import (
	"math"
	"time"
)

// Statistic selects how a provider aggregates datapoints within one
// sampling period.
type Statistic string

const (
	StatAverage Statistic = "Average"
	StatSum     Statistic = "Sum"
	StatMaximum Statistic = "Maximum"
	StatMinimum Statistic = "Minimum"
)

// MetricCategory groups catalog entries for display ordering.
type MetricCategory string

const (
	CategoryCore        MetricCategory = "core"
	CategoryPerformance MetricCategory = "performance"
	CategoryStorage     MetricCategory = "storage"
	CategoryNetwork     MetricCategory = "network"
	CategoryAdvanced    MetricCategory = "advanced"
)

// CatalogEntry is the static description of one metric a service can
// serve: its provider-side name, unit (empty when the provider does not
// report one), the statistic to request, and a display category.
type CatalogEntry struct {
	Name      string
	Unit      string
	Statistic Statistic
	Category  MetricCategory
}

// RawSample is one metric's datapoints exactly as the fetch client
// returned them: parallel value/timestamp arrays that have not been
// validated yet. Lengths are only guaranteed equal after validation.
type RawSample struct {
	Values     []float64
	Timestamps []time.Time
}

// Series is the normalized representation of one named, time-ordered,
// sanitized metric regardless of source service. A Series is built
// whole by the normalizer each refresh and never mutated afterwards.
type Series struct {
	DisplayName string
	RawName     string
	Unit        string
	History     []float64
	Timestamps  []time.Time

	// SourceService is the registry id of the service the series
	// came from (e.g. "rds", "sqs", "hetzner").
	SourceService string
}

// Current returns the most recent finite value in the history. The
// boolean is false when the series holds no finite value at all, so
// callers can render "no data" instead of a fabricated zero.
func (s Series) Current() (float64, bool) {
	for i := len(s.History) - 1; i >= 0; i-- {
		v := s.History[i]
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, true
		}
	}
	return 0, false
}

// Len returns the number of datapoints in the series.
func (s Series) Len() int { return len(s.History) }
