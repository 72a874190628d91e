// Package metrics turns raw provider samples into the unified series
// collection the dashboard renders. One bad metric never blocks a
// refresh; it is logged and dropped while the rest of the batch goes
// through.
package metrics

import "nathanbeddoewebdev/cloudpulse/internal/metricdata"

// Source supplies the per-service knowledge the normalizer needs:
// naming, units, and the plausibility rule table. providers.Descriptor
// is the canonical implementation.
type Source interface {
	Service() string
	MetricDisplayName(raw string) string
	MetricUnit(raw string) string
	Constraints() metricdata.RuleSet
}
