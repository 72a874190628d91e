package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"nathanbeddoewebdev/cloudpulse/internal/nav"
	"nathanbeddoewebdev/cloudpulse/internal/providers"
)

func (m dashModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.savePrefs()
		return m, tea.Quit
	}

	switch m.state.Screen() {
	case nav.ScreenServiceList:
		return m.keysServiceList(msg)
	case nav.ScreenInstanceList:
		return m.keysInstanceList(msg)
	case nav.ScreenMetricsSummary:
		return m.keysMetricsSummary(msg)
	case nav.ScreenInstanceDetails:
		return m.keysInstanceDetails(msg)
	}
	return m, nil
}

func (m dashModel) keysServiceList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.state.Service.Prev(len(m.services))

	case "down", "j":
		m.state.Service.Next(len(m.services))

	case "enter":
		idx, ok := m.state.Service.Selected()
		if !ok {
			return m, nil
		}
		desc, err := providers.Get(m.services[idx])
		if err != nil {
			m.fetchErr = err
			return m, nil
		}

		if !m.state.EnterInstanceList() {
			return m, nil
		}
		m.desc = desc
		m.client = nil
		m.instances = nil
		m.fetchErr = nil
		m.state.Loading().Start()
		return m, tea.Batch(m.fetchInstancesCmd(false), m.loadingTick(), m.spinner.Tick)
	}
	return m, nil
}

func (m dashModel) keysInstanceList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.state.GoBack(len(m.instances))
		// The service catalog is local; nothing to load.
		m.state.Loading().Stop()
		m.fetchErr = nil

	case "up", "k":
		m.state.Instance.Prev(len(m.instances))

	case "down", "j":
		m.state.Instance.Next(len(m.instances))

	case "r":
		// Explicit refresh bypasses the listing cache.
		m.state.Loading().Start()
		return m, tea.Batch(m.fetchInstancesCmd(true), m.loadingTick())

	case "enter":
		if len(m.instances) == 0 {
			return m, nil
		}
		inst, ok := m.state.Instance.Selected()
		if !ok {
			return m, nil
		}
		m.applyPrefs(m.instances[inst].ID)

		// Clear the previous instance's metrics first so the grid
		// cursor is sized from the empty collection.
		m.collection.Replace(nil)
		if !m.state.EnterMetricsSummary(m.collection.Len()) {
			return m, nil
		}
		m.fetchErr = nil
		m.state.Loading().Start()

		cmds := []tea.Cmd{m.fetchMetricsCmd(), m.loadingTick(), m.spinner.Tick}
		if !m.refreshScheduled && m.refreshEvery > 0 {
			m.refreshScheduled = true
			cmds = append(cmds, m.refreshTick())
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m dashModel) keysMetricsSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.savePrefs()
		m.state.GoBack(len(m.instances))
		return m, nil

	case "tab":
		m.state.NextPanel()
		return m, nil

	case "r":
		m.state.Loading().Start()
		return m, tea.Batch(m.fetchMetricsCmd(), m.loadingTick())
	}

	switch m.state.FocusedPanel() {
	case nav.PanelTimezone:
		return m.keysTimezonePanel(msg)
	case nav.PanelPeriod:
		return m.keysPeriodPanel(msg)
	case nav.PanelTimeRanges:
		return m.keysTimeRangePanel(msg)
	case nav.PanelSparklineGrid:
		return m.keysGridPanel(msg)
	}
	return m, nil
}

func (m dashModel) keysTimezonePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(TimezoneOptions())
	switch msg.String() {
	case "up", "k":
		m.state.Timezone.Prev(n)
	case "down", "j":
		m.state.Timezone.Next(n)
	default:
		return m, nil
	}

	idx := m.state.Timezone.SelectedOr(0)
	m.loc = loadLocation(TimezoneOptions()[idx])
	// Display-only change; persist but do not refetch.
	m.savePrefs()
	return m, nil
}

func (m dashModel) keysPeriodPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.selector.PeriodPrev()
	case "down", "j":
		m.selector.PeriodNext()
	case "a":
		m.selector.ClearPeriod()
	default:
		return m, nil
	}

	m.savePrefs()
	m.state.Loading().Start()
	return m, tea.Batch(m.fetchMetricsCmd(), m.loadingTick())
}

func (m dashModel) keysTimeRangePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.selector.RangePrev()
	case "down", "j":
		m.selector.RangeNext()
	default:
		return m, nil
	}

	m.savePrefs()
	m.state.Loading().Start()
	return m, tea.Batch(m.fetchMetricsCmd(), m.loadingTick())
}

func (m dashModel) keysGridPanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.collection.Len()
	switch msg.String() {
	case "up", "k":
		m.state.GridScrollUp(n)
	case "down", "j":
		m.state.GridScrollDown(n)
	case "left", "h":
		m.state.GridScrollLeft(n)
	case "right", "l":
		m.state.GridScrollRight(n)
	case "enter":
		if n == 0 {
			return m, nil
		}
		m.state.EnterInstanceDetails()
	}
	return m, nil
}

func (m dashModel) keysInstanceDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.collection.Len()
	switch msg.String() {
	case "esc", "backspace":
		m.state.GoBack(len(m.instances))

	case "left", "h", "up", "k":
		m.state.SequentialPrev(n)

	case "right", "l", "down", "j":
		m.state.SequentialNext(n)

	case "r":
		m.state.Loading().Start()
		return m, tea.Batch(m.fetchMetricsCmd(), m.loadingTick())
	}
	return m, nil
}
