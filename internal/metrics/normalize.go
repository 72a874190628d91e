package metrics

import (
	"sort"

	"github.com/charmbracelet/log"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/metricdata"
)

// Normalize runs one refresh worth of raw samples through the
// validate, sanitize, constrain pipeline and returns the resulting
// series sorted by display name. Metrics that fail validation or a
// fatal constraint are logged and dropped individually.
func Normalize(src Source, raw map[string]domain.RawSample) []domain.Series {
	out := make([]domain.Series, 0, len(raw))

	for name, sample := range raw {
		rep := metricdata.Validate(name, sample.Values, sample.Timestamps)
		if rep.Err != nil {
			log.Warn("dropping metric", "service", src.Service(), "metric", name, "error", rep.Err)
			continue
		}
		for _, w := range rep.Warnings {
			log.Warn("metric quality", "service", src.Service(), "metric", name, "warning", w)
		}

		values := metricdata.Sanitize(sample.Values)

		crep := src.Constraints().CheckSeries(name, values)
		if crep.Err != nil {
			log.Warn("dropping metric", "service", src.Service(), "metric", name, "error", crep.Err)
			continue
		}
		for _, w := range crep.Warnings {
			log.Warn("metric constraint", "service", src.Service(), "metric", name, "warning", w)
		}

		out = append(out, domain.Series{
			DisplayName:   src.MetricDisplayName(name),
			RawName:       name,
			Unit:          src.MetricUnit(name),
			History:       values,
			Timestamps:    sample.Timestamps,
			SourceService: src.Service(),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out
}
