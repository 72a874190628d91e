package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/nav"
	"nathanbeddoewebdev/cloudpulse/internal/providers"
	"nathanbeddoewebdev/cloudpulse/internal/timerange"
	"nathanbeddoewebdev/cloudpulse/internal/tui/components"
	"nathanbeddoewebdev/cloudpulse/internal/tui/styles"
)

func (m dashModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var view string
	switch m.state.Screen() {
	case nav.ScreenServiceList:
		view = m.viewServiceList()
	case nav.ScreenInstanceList:
		view = m.viewInstanceList()
	case nav.ScreenMetricsSummary:
		view = m.viewMetricsSummary()
	case nav.ScreenInstanceDetails:
		view = m.viewInstanceDetails()
	}

	return padToHeight(view, m.width, m.height)
}

// padToHeight ensures the view string has exactly `height` lines so
// Bubbletea's alt screen renderer always repaints the full terminal.
func padToHeight(view string, width, height int) string {
	if height <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// --- Screens ---

func (m dashModel) viewServiceList() string {
	header := components.Header(m.width, "services", "")
	footer := components.Footer(m.width, []components.KeyBinding{
		{Key: "↑/↓", Desc: "select"},
		{Key: "enter", Desc: "open"},
		{Key: "q", Desc: "quit"},
	})

	var rows []string
	selected, _ := m.state.Service.Selected()
	for i, id := range m.services {
		label := id
		if d, err := providers.Get(id); err == nil {
			label = fmt.Sprintf("%-10s %s", id, styles.Subtitle.Render(d.DisplayName))
		}
		if i == selected {
			rows = append(rows, styles.TableSelectedRow.Render("▸ "+label))
		} else {
			rows = append(rows, styles.TableCell.Render("  "+label))
		}
	}
	if len(rows) == 0 {
		rows = append(rows, styles.MutedText.Render("no services registered"))
	}

	content := lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(rows, "\n"))
	return m.frame(header, content, footer)
}

func (m dashModel) viewInstanceList() string {
	service := ""
	if m.desc != nil {
		service = m.desc.DisplayName
	}
	header := components.Header(m.width, "instances", service)
	footer := components.Footer(m.width, []components.KeyBinding{
		{Key: "↑/↓", Desc: "select"},
		{Key: "enter", Desc: "metrics"},
		{Key: "r", Desc: "refresh"},
		{Key: "esc", Desc: "back"},
	})

	if m.state.Loading().Active() {
		content := lipgloss.Place(m.width, m.contentHeight(header, footer), lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render(m.spinner.View()+"  Loading instances..."))
		return m.frame(header, content, footer)
	}

	var rows []string
	selected, _ := m.state.Instance.Selected()
	for i, inst := range m.instances {
		line := fmt.Sprintf("%-30s %-16s %s",
			truncateName(inst.Name, 30),
			styles.StatusIndicator(inst.Status),
			styles.MutedText.Render(inst.Detail))
		if i == selected {
			rows = append(rows, styles.TableSelectedRow.Render("▸ "+line))
		} else {
			rows = append(rows, styles.TableCell.Render("  "+line))
		}
	}
	if len(rows) == 0 {
		rows = append(rows, styles.MutedText.Render("no instances found"))
	}

	content := lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(rows, "\n"))
	return m.frame(header, content, footer)
}

func (m dashModel) viewMetricsSummary() string {
	header := components.Header(m.width, m.committedName(), m.serviceName())
	footer := components.Footer(m.width, []components.KeyBinding{
		{Key: "tab", Desc: "panel"},
		{Key: "↑/↓/←/→", Desc: "navigate"},
		{Key: "enter", Desc: "detail"},
		{Key: "a", Desc: "auto period"},
		{Key: "r", Desc: "refresh"},
		{Key: "esc", Desc: "back"},
	})

	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		m.timezonePanel(),
		m.periodPanel(),
		m.timeRangePanel(),
	)
	sidebarWidth := lipgloss.Width(sidebar)

	gridWidth := m.width - sidebarWidth - 2
	if gridWidth < 30 {
		gridWidth = 30
	}
	grid := m.sparklineGrid(gridWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", grid)
	content := lipgloss.NewStyle().Padding(1, 1).Render(body)
	return m.frame(header, content, footer)
}

func (m dashModel) viewInstanceDetails() string {
	header := components.Header(m.width, m.committedName(), m.serviceName())
	footer := components.Footer(m.width, []components.KeyBinding{
		{Key: "←/→", Desc: "prev/next metric"},
		{Key: "r", Desc: "refresh"},
		{Key: "esc", Desc: "back"},
	})

	n := m.collection.Len()
	idx, ok := m.state.Grid.Selected()
	if !ok || n == 0 {
		content := lipgloss.Place(m.width, m.contentHeight(header, footer), lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("no metric selected"))
		return m.frame(header, content, footer)
	}

	series, _ := m.collection.At(idx)
	position := styles.MutedText.Render(fmt.Sprintf("metric %d of %d  ·  %s  ·  period %s",
		idx+1, n, rangeLabel(m.selector.RangeIndex()), periodLabel(m.selector.EffectivePeriod())))

	chart := components.MetricsChart(series, m.width-6, m.loc)
	content := lipgloss.NewStyle().Padding(1, 3).Render(
		lipgloss.JoinVertical(lipgloss.Left, position, "", chart))
	return m.frame(header, content, footer)
}

// --- Summary panels ---

func (m dashModel) timezonePanel() string {
	opts := TimezoneOptions()
	cursor := m.state.Timezone.SelectedOr(0)
	lines := make([]string, 0, len(opts))
	for i, opt := range opts {
		lines = append(lines, optionLine(opt.Label, i == cursor))
	}
	return m.panel("Timezone", strings.Join(lines, "\n"), nav.PanelTimezone)
}

func (m dashModel) periodPanel() string {
	opts := m.selector.PeriodOptions()
	cursor := m.selector.PeriodIndex()
	lines := make([]string, 0, len(opts)+1)
	for i, opt := range opts {
		lines = append(lines, optionLine(opt.Label, i == cursor))
	}
	if !m.selector.HasExplicitPeriod() {
		lines = append(lines, styles.MutedText.Render(
			fmt.Sprintf("auto: %s", periodLabel(m.selector.EffectivePeriod()))))
	}
	return m.panel("Period", strings.Join(lines, "\n"), nav.PanelPeriod)
}

func (m dashModel) timeRangePanel() string {
	opts := rangeOptionLabels()
	cursor := m.selector.RangeIndex()

	// The table is long; show a window around the cursor.
	const visible = 7
	start, end := window(cursor, len(opts), visible)
	lines := make([]string, 0, visible+2)
	if start > 0 {
		lines = append(lines, styles.MutedText.Render("  ↑"))
	}
	for i := start; i < end; i++ {
		lines = append(lines, optionLine(opts[i], i == cursor))
	}
	if end < len(opts) {
		lines = append(lines, styles.MutedText.Render("  ↓"))
	}
	return m.panel("Time range", strings.Join(lines, "\n"), nav.PanelTimeRanges)
}

func (m dashModel) sparklineGrid(width int) string {
	n := m.collection.Len()

	if m.state.Loading().Active() && n == 0 {
		return styles.Card.Width(width).Render(
			styles.MutedText.Render(m.spinner.View() + "  Loading metrics..."))
	}
	if n == 0 {
		msg := "no metrics available"
		if m.fetchErr != nil {
			msg = remediationHint(m.fetchErr)
		}
		return styles.Card.Width(width).Render(styles.ErrorText.Render(msg))
	}

	selected, _ := m.state.Grid.Selected()
	focused := m.state.FocusedPanel() == nav.PanelSparklineGrid
	cellWidth := width/2 - 2
	start, end := m.state.GridWindow(n)

	var rows []string
	for i := start; i < end; i += 2 {
		left := m.gridCell(i, cellWidth, focused && i == selected)
		row := left
		if i+1 < end {
			right := m.gridCell(i+1, cellWidth, focused && i+1 == selected)
			row = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
		}
		rows = append(rows, row)
	}

	page := start/nav.GridPageSize + 1
	pages := (n + nav.GridPageSize - 1) / nav.GridPageSize
	if pages > 1 {
		rows = append(rows, styles.MutedText.Render(fmt.Sprintf("  page %d/%d", page, pages)))
	}
	if m.fetchErr != nil {
		rows = append(rows, styles.ErrorText.Render(remediationHint(m.fetchErr)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m dashModel) gridCell(i, width int, selected bool) string {
	series, ok := m.collection.At(i)
	if !ok {
		return ""
	}

	valueStyle := styles.Value
	if cur, hasValue := series.Current(); hasValue {
		valueStyle = styles.HealthStyle(healthLevel(series.RawName, cur))
	}
	return components.SparklineCell(series, width, selected, valueStyle)
}

// --- Shared pieces ---

func (m dashModel) frame(header, content, footer string) string {
	status := ""
	if m.fetchErr != nil && m.state.Screen() != nav.ScreenMetricsSummary {
		status = components.StatusBar(m.width, remediationHint(m.fetchErr), true)
	}

	parts := []string{header, content}
	if status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m dashModel) contentHeight(header, footer string) int {
	h := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if h < 1 {
		h = 1
	}
	return h
}

func (m dashModel) panel(title, body string, p nav.Panel) string {
	frame := styles.Card
	if m.state.FocusedPanel() == p {
		frame = styles.CardActive
	}
	return frame.Render(styles.Label.Render(title) + "\n" + body)
}

func (m dashModel) serviceName() string {
	if m.desc == nil {
		return ""
	}
	return m.desc.DisplayName
}

func (m dashModel) committedName() string {
	if inst, ok := m.committedInstance(); ok {
		return inst.Name
	}
	return "metrics"
}

func optionLine(label string, selected bool) string {
	if selected {
		return styles.AccentText.Render("▸ " + label)
	}
	return styles.Value.Render("  " + label)
}

// window clips a list to `visible` entries keeping the cursor inside.
func window(cursor, n, visible int) (int, int) {
	if n <= visible {
		return 0, n
	}
	start := cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > n {
		start = n - visible
	}
	return start, start + visible
}

func periodLabel(seconds int) string {
	switch {
	case seconds >= 86400:
		return fmt.Sprintf("%dd", seconds/86400)
	case seconds >= 3600:
		return fmt.Sprintf("%dh", seconds/3600)
	case seconds >= 60:
		return fmt.Sprintf("%dm", seconds/60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

func truncateName(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}

func rangeOptionLabels() []string {
	opts := timerange.Options()
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	return labels
}

// remediationHint turns a fetch error into a banner with a concrete
// next step per error category.
func remediationHint(err error) string {
	switch {
	case errors.Is(err, domain.ErrCredentials):
		return "credentials missing or expired. Run `cloudpulse auth login` or check your AWS profile"
	case errors.Is(err, domain.ErrPermission):
		return "access denied. The active identity lacks read permissions for this service"
	case errors.Is(err, domain.ErrThrottled):
		return "rate limited by the provider. Data will refresh automatically, consider a coarser period"
	case errors.Is(err, domain.ErrTimeout):
		return "request timed out. Check connectivity, or narrow the time range"
	case errors.Is(err, domain.ErrNotFound):
		return "resource not found. It may have been deleted, refresh the instance list"
	default:
		return fmt.Sprintf("fetch failed: %v", err)
	}
}
