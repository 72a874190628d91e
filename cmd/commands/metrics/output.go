package metrics

import (
	"encoding/json"
	"fmt"
	"math"
	"text/tabwriter"
	"time"

	"nathanbeddoewebdev/cloudpulse/internal/domain"

	"github.com/spf13/cobra"
)

// printSeriesJSON encodes the normalized series as indented JSON.
func printSeriesJSON(cmd *cobra.Command, series []domain.Series) {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(series)
}

// printSummary prints a per-metric stats table followed by the queried
// window.
func printSummary(cmd *cobra.Command, series []domain.Series, start, end time.Time, period int) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, "METRIC\tCUR\tMIN\tMAX\tAVG")
	fmt.Fprintln(w, "------\t---\t---\t---\t---")

	for _, s := range series {
		if len(s.History) == 0 {
			continue
		}
		cur, min, max, avg := computeStats(s.History)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.DisplayName,
			formatMetric(cur, s.Unit),
			formatMetric(min, s.Unit),
			formatMetric(max, s.Unit),
			formatMetric(avg, s.Unit),
		)
	}

	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTime range: %s to %s (period: %ds)\n",
		start.UTC().Format("2006-01-02 15:04:05 UTC"),
		end.UTC().Format("2006-01-02 15:04:05 UTC"),
		period,
	)
}

// computeStats returns cur (last), min, max, avg for a value slice.
func computeStats(values []float64) (cur, min, max, avg float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	cur = values[len(values)-1]
	min = values[0]
	max = values[0]
	sum := 0.0

	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	avg = sum / float64(len(values))
	return cur, min, max, avg
}

// formatMetric renders a value with a unit suffix using human-readable
// scaling.
func formatMetric(v float64, suffix string) string {
	switch {
	case v >= 1_000_000_000:
		return fmt.Sprintf("%.1fG%s", v/1_000_000_000, suffix)
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM%s", v/1_000_000, suffix)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK%s", v/1_000, suffix)
	case v == 0:
		return "0" + suffix
	case math.Abs(v) < 0.01:
		return fmt.Sprintf("%.3f%s", v, suffix)
	default:
		return fmt.Sprintf("%.1f%s", v, suffix)
	}
}
