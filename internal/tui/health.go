package tui

// Health levels for current-value coloring.
const (
	healthOK = iota
	healthWarn
	healthCrit
)

// healthBound colors a metric's current value: warn at or above Warn,
// critical at or above Crit. Metrics without an entry always render
// healthy.
type healthBound struct {
	Warn float64
	Crit float64
}

// healthBounds is keyed by raw metric name. Thresholds are display
// hints only; they never drop data.
var healthBounds = map[string]healthBound{
	"CPUUtilization":                     {Warn: 75, Crit: 90},
	"cpu":                                {Warn: 75, Crit: 90},
	"DatabaseConnections":                {Warn: 500, Crit: 1000},
	"DiskQueueDepth":                     {Warn: 5, Crit: 25},
	"SwapUsage":                          {Warn: 256 * 1024 * 1024, Crit: 1024 * 1024 * 1024},
	"ReadLatency":                        {Warn: 0.02, Crit: 0.1},
	"WriteLatency":                       {Warn: 0.02, Crit: 0.1},
	"ApproximateAgeOfOldestMessage":      {Warn: 3600, Crit: 86400},
	"ApproximateNumberOfMessagesVisible": {Warn: 10_000, Crit: 100_000},
}

// healthLevel classifies a current value for its metric.
func healthLevel(rawName string, value float64) int {
	b, ok := healthBounds[rawName]
	if !ok {
		return healthOK
	}
	switch {
	case value >= b.Crit:
		return healthCrit
	case value >= b.Warn:
		return healthWarn
	default:
		return healthOK
	}
}
