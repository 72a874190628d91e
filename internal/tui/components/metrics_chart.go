package components

import (
	"fmt"
	"time"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// chartHeight is the fixed height for the detail chart.
const chartHeight = 12

// MetricsChart renders the full-width detail chart for one series with
// a label header, a cur/min/max summary, and a time axis rendered in
// the given location.
func MetricsChart(series domain.Series, width int, loc *time.Location) string {
	if len(series.History) == 0 {
		return styles.MutedText.Render(series.DisplayName + ": no data")
	}

	// Reserve space for Y-axis labels (number + " ┤" ≈ 9 chars).
	plotWidth := width - 9
	if plotWidth < 10 {
		plotWidth = 10
	}

	chart := asciigraph.Plot(series.History,
		asciigraph.Height(chartHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.DodgerBlue),
		asciigraph.LabelColor(asciigraph.Default),
	)

	suffix := unitSuffix(series.Unit)
	min, max := minMax(series.History)

	var cur string
	if v, ok := series.Current(); ok {
		cur = FormatValue(v, suffix)
	} else {
		cur = "no data"
	}
	summary := styles.MutedText.Render(
		fmt.Sprintf("  cur: %s  min: %s  max: %s  samples: %d",
			cur,
			FormatValue(min, suffix),
			FormatValue(max, suffix),
			len(series.History),
		),
	)

	header := styles.Label.Render(series.DisplayName)
	parts := []string{header, chart, summary}

	if axis := timeAxis(series.Timestamps, width, loc); axis != "" {
		parts = append(parts, axis)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// timeAxis renders first and last sample times under the plot.
func timeAxis(stamps []time.Time, width int, loc *time.Location) string {
	if len(stamps) == 0 {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}

	format := "15:04"
	first := stamps[0].In(loc)
	last := stamps[len(stamps)-1].In(loc)
	if last.Sub(first) > 24*time.Hour {
		format = "Jan 2 15:04"
	}

	left := first.Format(format)
	right := last.Format(format)
	gap := width - len(left) - len(right) - 4
	if gap < 1 {
		gap = 1
	}
	line := fmt.Sprintf("  %s%*s", left, gap+len(right), right)
	return styles.MutedText.Render(line)
}
