package components

import (
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/tui/styles"
)

// sparklineHeight is the fixed height of a grid cell's sparkline.
const sparklineHeight = 3

// SparklineCell renders one metric tile for the summary grid: name,
// current value, and a compact sparkline of the history. valueStyle
// carries the health coloring decided by the caller.
func SparklineCell(series domain.Series, width int, selected bool, valueStyle lipgloss.Style) string {
	frame := styles.Card
	if selected {
		frame = styles.CardSelected
	}

	innerWidth := width - frame.GetHorizontalFrameSize()
	if innerWidth < 12 {
		innerWidth = 12
	}

	name := styles.Label.Render(truncate(series.DisplayName, innerWidth))

	var valueLine string
	if cur, ok := series.Current(); ok {
		valueLine = valueStyle.Render(FormatValue(cur, unitSuffix(series.Unit)))
	} else {
		valueLine = styles.MutedText.Render("no data")
	}

	var plot string
	if len(series.History) > 0 {
		sl := sparkline.New(innerWidth, sparklineHeight,
			sparkline.WithStyle(styles.AccentText))
		sl.PushAll(series.History)
		sl.Draw()
		plot = sl.View()
	} else {
		plot = styles.MutedText.Render("-")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, name, valueLine, plot)
	return frame.Width(width - frame.GetHorizontalBorderSize()).Render(content)
}

// unitSuffix renders a series unit as a compact value suffix.
func unitSuffix(unit string) string {
	switch unit {
	case "", "count":
		return ""
	case "%":
		return "%"
	default:
		return " " + unit
	}
}

func truncate(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
