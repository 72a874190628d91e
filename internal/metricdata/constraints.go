package metricdata

import "fmt"

// Rule bounds the plausible values of one metric. The zero rule allows
// everything. Rules are data: onboarding a new service means adding
// table entries, not code.
type Rule struct {
	// FatalBelow rejects the metric for this refresh when a sample
	// is below the bound (e.g. message counts can never be negative).
	FatalBelow *float64

	// WarnAbove records a diagnostic warning when a sample exceeds
	// the bound but keeps the metric (soft sanity ceiling).
	WarnAbove *float64

	// WarnAboveNote is appended to the warning to hint at the likely
	// cause ("possible retention issue", ...). Optional.
	WarnAboveNote string
}

// RuleSet maps metric name to its constraint rule for one service.
type RuleSet map[string]Rule

// Bound is a convenience for building rule tables literally.
func Bound(v float64) *float64 { return &v }

// Check validates a single sample value against the set. Metrics
// without a rule pass unconditionally.
func (rs RuleSet) Check(metric string, value float64) Report {
	r := Report{Metric: metric}

	rule, ok := rs[metric]
	if !ok {
		return r
	}

	if rule.FatalBelow != nil && value < *rule.FatalBelow {
		r.Err = fmt.Errorf("metric %q: value %g below minimum %g",
			metric, value, *rule.FatalBelow)
		return r
	}

	if rule.WarnAbove != nil && value > *rule.WarnAbove {
		w := fmt.Sprintf("value %g above expected maximum %g", value, *rule.WarnAbove)
		if rule.WarnAboveNote != "" {
			w += ", " + rule.WarnAboveNote
		}
		r.Warnings = append(r.Warnings, w)
	}

	return r
}

// CheckSeries applies Check to every sanitized value and returns the
// first fatal report, or an aggregate of all warnings.
func (rs RuleSet) CheckSeries(metric string, values []float64) Report {
	agg := Report{Metric: metric}
	for _, v := range values {
		r := rs.Check(metric, v)
		if r.Err != nil {
			return r
		}
		agg.Warnings = append(agg.Warnings, r.Warnings...)
	}
	return agg
}
