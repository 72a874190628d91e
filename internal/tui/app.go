// Package tui implements the cloudpulse dashboard: a single Bubbletea
// program that walks service list, instance list, metrics summary, and
// instance detail screens. Navigation state lives in nav.State; this
// package renders it and runs the fetches it requests.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"nathanbeddoewebdev/cloudpulse/internal/config"
	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/fetch"
	"nathanbeddoewebdev/cloudpulse/internal/metrics"
	"nathanbeddoewebdev/cloudpulse/internal/nav"
	"nathanbeddoewebdev/cloudpulse/internal/prefs"
	"nathanbeddoewebdev/cloudpulse/internal/providers"
	"nathanbeddoewebdev/cloudpulse/internal/swrcache"
	"nathanbeddoewebdev/cloudpulse/internal/timerange"
	"nathanbeddoewebdev/cloudpulse/internal/tui/styles"
)

// defaultRefresh is the metrics auto-refresh interval when the config
// does not override it.
const defaultRefresh = 30 * time.Second

// ClientFactory builds a fetch client for a service id. The dashboard
// calls it when the user drills into a service, never at startup, so a
// missing token for one service does not block the others.
type ClientFactory func(ctx context.Context, serviceID string) (fetch.Client, error)

// Options wires the dashboard's collaborators.
type Options struct {
	Config  *config.Config
	Clients ClientFactory

	// Prefs persists per-instance view preferences. Optional.
	Prefs prefs.Repository

	// Cache serves instance listings stale-while-revalidate. Optional.
	Cache *swrcache.Cache
}

type dashModel struct {
	opts Options

	state    *nav.State
	selector *timerange.Selector
	tracker  *fetch.Tracker

	services   []string
	instances  []domain.Instance
	collection *metrics.Collection

	// client and desc belong to the service the user drilled into.
	client fetch.Client
	desc   *providers.Descriptor

	loc          *time.Location
	refreshEvery time.Duration

	fetchErr error
	spinner  spinner.Model

	// refreshScheduled keeps exactly one auto-refresh tick chain alive.
	refreshScheduled bool

	width  int
	height int
}

// Run starts the dashboard and blocks until the user quits.
func Run(opts Options) error {
	if opts.Config == nil {
		opts.Config = &config.Config{}
	}

	m := newDashModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func newDashModel(opts Options) dashModel {
	if opts.Config == nil {
		opts.Config = &config.Config{}
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	state := nav.NewState()
	services := providers.ListSupported()

	cfg := opts.Config
	if idx := serviceIndex(services, cfg.DefaultService); idx >= 0 {
		state.Service.Select(idx, len(services))
	} else if len(services) > 0 {
		state.Service.Select(0, len(services))
	}

	tzIdx := timezoneIndex(cfg.Timezone)
	state.Timezone.Select(tzIdx, len(TimezoneOptions()))

	selector := timerange.NewSelector()
	if idx, ok := rangeIndexByLabel(cfg.DefaultTimeRange); ok {
		selector.SelectRange(idx)
	}

	refresh := defaultRefresh
	switch {
	case cfg.RefreshSeconds > 0:
		refresh = time.Duration(cfg.RefreshSeconds) * time.Second
	case cfg.RefreshSeconds < 0:
		refresh = 0
	}

	return dashModel{
		opts:         opts,
		state:        state,
		selector:     selector,
		tracker:      &fetch.Tracker{},
		services:     services,
		collection:   &metrics.Collection{},
		loc:          loadLocation(TimezoneOptions()[tzIdx]),
		refreshEvery: refresh,
		spinner:      s,
	}
}

func (m dashModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case instancesMsg:
		return m.handleInstances(msg)

	case metricsMsg:
		return m.handleMetrics(msg)

	case refreshTickMsg:
		return m.handleRefreshTick()

	case loadingTickMsg:
		return m.handleLoadingTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// --- Fetch result handling ---

func (m dashModel) handleInstances(msg instancesMsg) (tea.Model, tea.Cmd) {
	if m.tracker.Stale(msg.gen) {
		log.Debug("discarding superseded instance fetch", "gen", msg.gen)
		return m, nil
	}
	m.state.Loading().Stop()

	if msg.err != nil {
		m.fetchErr = msg.err
		log.Warn("instance fetch failed", "error", msg.err)
		return m, nil
	}

	m.fetchErr = nil
	m.client = msg.client
	m.instances = msg.instances
	m.state.Instance.Clamp(len(m.instances))
	return m, nil
}

func (m dashModel) handleMetrics(msg metricsMsg) (tea.Model, tea.Cmd) {
	if m.tracker.Stale(msg.gen) {
		log.Debug("discarding superseded metrics fetch", "gen", msg.gen)
		return m, nil
	}
	m.state.Loading().Stop()

	if msg.err != nil {
		m.fetchErr = msg.err
		log.Warn("metrics fetch failed", "error", msg.err)
		return m, nil
	}

	m.fetchErr = nil
	hadGrid := m.collection.Len() > 0
	m.collection.Replace(msg.series)
	if !hadGrid {
		m.state.InitGrid(m.collection.Len())
	} else {
		m.state.Grid.Clamp(m.collection.Len())
	}
	return m, nil
}

// --- Ticks ---

func (m dashModel) handleRefreshTick() (tea.Model, tea.Cmd) {
	if m.refreshEvery <= 0 {
		return m, nil
	}
	if !m.onMetricsScreen() {
		// Keep ticking so refresh resumes when the user drills back in.
		return m, m.refreshTick()
	}
	return m, tea.Batch(m.refreshTick(), m.fetchMetricsCmd())
}

func (m dashModel) handleLoadingTick() (tea.Model, tea.Cmd) {
	l := m.state.Loading()
	if !l.Active() {
		return m, nil
	}
	if l.TimedOut() {
		// Invalidate the outstanding generation so the abandoned fetch
		// cannot land after we reported the timeout.
		m.tracker.Next()
		m.fetchErr = fmt.Errorf("loading took longer than %s: %w", nav.LoadTimeout, domain.ErrTimeout)
		return m, nil
	}
	return m, m.loadingTick()
}

func (m dashModel) onMetricsScreen() bool {
	s := m.state.Screen()
	return s == nav.ScreenMetricsSummary || s == nav.ScreenInstanceDetails
}

// --- Small helpers ---

func serviceIndex(services []string, id string) int {
	for i, s := range services {
		if s == id {
			return i
		}
	}
	return -1
}

func rangeLabel(idx int) string {
	opts := timerange.Options()
	if idx < 0 || idx >= len(opts) {
		return ""
	}
	return opts[idx].Label
}

func rangeIndexByLabel(label string) (int, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, false
	}
	for i, opt := range timerange.Options() {
		if opt.Label == label {
			return i, true
		}
	}
	return 0, false
}
