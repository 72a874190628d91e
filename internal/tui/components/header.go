// Package components provides reusable Bubbletea UI building blocks
// for the cloudpulse TUI. These are render-only helpers (not
// tea.Model) used by the dashboard model to compose views.
package components

import (
	"strings"

	"nathanbeddoewebdev/cloudpulse/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the application header bar.
//
//	┌──────────────────────────────────────────┐
//	│  cloudpulse > orders-db      Amazon RDS  │
//	└──────────────────────────────────────────┘
func Header(width int, breadcrumb string, service string) string {
	if width < 10 {
		return ""
	}

	leftStyle := styles.Title.Foreground(styles.Blue)
	left := leftStyle.Render("cloudpulse")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}

	right := ""
	if service != "" {
		right = styles.Subtitle.Render(service)
	}

	// Calculate spacing between left and right.
	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	innerWidth := width - 4 // account for padding
	gap := max(innerWidth-leftLen-rightLen, 1)

	content := left + strings.Repeat(" ", gap) + right

	bar := lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(content)

	return bar
}
