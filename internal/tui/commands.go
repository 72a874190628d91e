package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/nav"
	"nathanbeddoewebdev/cloudpulse/internal/prefs"
)

// fetchInstancesCmd builds the client for the selected service and
// lists its instances. force bypasses the listing cache so an explicit
// refresh always reaches the provider. The client rides back on the
// message so a stale result cannot install a client for a service the
// user already left.
func (m dashModel) fetchInstancesCmd(force bool) tea.Cmd {
	idx, ok := m.state.Service.Selected()
	if !ok || idx >= len(m.services) {
		return nil
	}
	serviceID := m.services[idx]

	gen := m.tracker.Next()
	factory := m.opts.Clients
	cache := m.opts.Cache

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), nav.LoadTimeout)
		defer cancel()

		client, err := factory(ctx, serviceID)
		if err != nil {
			return instancesMsg{gen: gen, err: err}
		}

		var list []domain.Instance
		if force {
			list, err = cache.Refresh(ctx, serviceID, client.FetchInstances)
		} else {
			list, err = cache.Instances(ctx, serviceID, client.FetchInstances)
		}
		if err != nil {
			return instancesMsg{gen: gen, err: err}
		}
		return instancesMsg{gen: gen, client: client, instances: list}
	}
}

// fetchMetricsCmd queries the committed instance over the active range
// at the effective period and normalizes the result.
func (m dashModel) fetchMetricsCmd() tea.Cmd {
	inst, ok := m.committedInstance()
	if !ok || m.client == nil || m.desc == nil {
		return nil
	}

	gen := m.tracker.Next()
	client := m.client
	desc := m.desc
	duration := m.selector.ActiveRange().Duration()
	period := m.selector.EffectivePeriod()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), nav.LoadTimeout)
		defer cancel()

		end := time.Now()
		start := end.Add(-duration)
		raw, err := client.FetchMetricSamples(ctx, inst.ID, start, end, period)
		if err != nil {
			return metricsMsg{gen: gen, err: err}
		}
		return metricsMsg{gen: gen, series: desc.Transform(raw)}
	}
}

func (m dashModel) refreshTick() tea.Cmd {
	if m.refreshEvery <= 0 {
		return nil
	}
	return tea.Tick(m.refreshEvery, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (m dashModel) loadingTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return loadingTickMsg(t)
	})
}

// committedInstance resolves the committed navigation index to the
// instance it points at.
func (m dashModel) committedInstance() (domain.Instance, bool) {
	idx, ok := m.state.CommittedInstance()
	if !ok || idx >= len(m.instances) {
		return domain.Instance{}, false
	}
	return m.instances[idx], true
}

// --- Preference persistence ---

// applyPrefs restores the stored time range, period, and timezone for
// an instance. Missing or unreadable preferences leave the defaults.
func (m *dashModel) applyPrefs(instanceID string) {
	if m.opts.Prefs == nil || m.desc == nil {
		return
	}

	p, err := m.opts.Prefs.Get(m.desc.ServiceID, instanceID)
	if err != nil {
		log.Warn("failed to load view prefs", "error", err)
		return
	}
	if p == nil {
		return
	}

	if idx, ok := rangeIndexByLabel(p.TimeRange); ok {
		m.selector.SelectRange(idx)
	}
	if p.PeriodSeconds > 0 {
		for i, opt := range m.selector.PeriodOptions() {
			if opt.Seconds == p.PeriodSeconds {
				m.selector.SelectPeriod(i)
				break
			}
		}
	}
	if p.Timezone != "" {
		idx := timezoneIndex(p.Timezone)
		m.state.Timezone.Select(idx, len(TimezoneOptions()))
		m.loc = loadLocation(TimezoneOptions()[idx])
	}
}

// savePrefs records the current range and period for the committed
// instance. Best effort; failures are logged, never surfaced.
func (m dashModel) savePrefs() {
	if m.opts.Prefs == nil || m.desc == nil {
		return
	}
	inst, ok := m.committedInstance()
	if !ok {
		return
	}

	p := &prefs.ViewPrefs{
		Service:    m.desc.ServiceID,
		InstanceID: inst.ID,
		TimeRange:  rangeLabel(m.selector.RangeIndex()),
		Timezone:   TimezoneOptions()[m.state.Timezone.SelectedOr(0)].Name,
	}
	if m.selector.HasExplicitPeriod() {
		p.PeriodSeconds = m.selector.EffectivePeriod()
	}

	if err := m.opts.Prefs.Save(p); err != nil {
		log.Warn("failed to save view prefs", "error", err)
	}
}
