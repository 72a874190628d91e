package timerange

import "time"

// PeriodOption is one legal sampling bucket width for the active range.
type PeriodOption struct {
	Label   string
	Seconds int
}

// Provider constraints tier the legal periods by total span: short
// spans admit high-resolution buckets, long spans only coarse ones.
var (
	highResPeriods = []PeriodOption{
		{"5 seconds", 5},
		{"10 seconds", 10},
		{"20 seconds", 20},
		{"30 seconds", 30},
		{"1 minute", 60},
		{"5 minutes", 300},
		{"15 minutes", 900},
	}
	standardPeriods = []PeriodOption{
		{"1 minute", 60},
		{"5 minutes", 300},
		{"15 minutes", 900},
		{"1 hour", 3600},
	}
	coarsePeriods = []PeriodOption{
		{"1 hour", 3600},
		{"6 hours", 21600},
		{"1 day", 86400},
	}
)

// PeriodOptions returns the legal sampling periods for a range,
// finest first.
func PeriodOptions(r Range) []PeriodOption {
	d := r.Duration()
	switch {
	case d <= 3*time.Hour:
		return highResPeriods
	case d <= 15*24*time.Hour:
		return standardPeriods
	default:
		return coarsePeriods
	}
}

// NearestPeriod picks the option whose seconds are closest to the
// given value. Options are ordered ascending, so equal distances
// resolve toward the smaller period. The boolean is false only for an
// empty option list.
func NearestPeriod(options []PeriodOption, seconds int) (PeriodOption, bool) {
	if len(options) == 0 {
		return PeriodOption{}, false
	}

	best := options[0]
	bestDiff := absInt(best.Seconds - seconds)
	for _, opt := range options[1:] {
		if d := absInt(opt.Seconds - seconds); d < bestDiff {
			best, bestDiff = opt, d
		}
	}
	return best, true
}

// AutoPeriod computes the deterministic default period for a range:
// the original tiered granularity heuristic, snapped into the legal
// option set so the result is always selectable.
func AutoPeriod(r Range) int {
	seconds := int(r.Duration() / time.Second)

	var base int
	switch {
	case seconds <= 3600:
		base = 60
	case seconds <= 21600:
		base = 300
	case seconds <= 86400:
		base = 900
	case seconds <= 604800:
		base = 3600
	default:
		// Aim for roughly 100 datapoints, rounded to whole hours.
		base = seconds / 100
		if base < 3600 {
			base = 3600
		}
		base = (base / 3600) * 3600
		if base > 86400 {
			base = 86400
		}
	}

	// Longer averaging windows trade resolution for smoothness.
	switch {
	case r.PeriodDays <= 3:
		// keep base
	case r.PeriodDays <= 7:
		base *= 2
	case r.PeriodDays <= 14:
		base *= 3
	default:
		base *= 4
	}
	if base > 86400 {
		base = 86400
	}

	opt, _ := NearestPeriod(PeriodOptions(r), base)
	return opt.Seconds
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
