// Package nav owns the dashboard's screen state, focused panel, and
// every list cursor. All mutation happens through named transition
// methods; rendering code only ever reads. The state machine is
// single-writer by construction and needs no locking.
package nav

// Screen identifies one of the four dashboard screens.
type Screen int

const (
	ScreenServiceList Screen = iota
	ScreenInstanceList
	ScreenMetricsSummary
	ScreenInstanceDetails
)

func (s Screen) String() string {
	switch s {
	case ScreenServiceList:
		return "service-list"
	case ScreenInstanceList:
		return "instance-list"
	case ScreenMetricsSummary:
		return "metrics-summary"
	case ScreenInstanceDetails:
		return "instance-details"
	default:
		return "unknown"
	}
}

// Panel identifies the focus target inside the metrics summary
// screen. Focus is meaningless on the other screens.
type Panel int

const (
	PanelTimezone Panel = iota
	PanelPeriod
	PanelTimeRanges
	PanelSparklineGrid
)

func (p Panel) String() string {
	switch p {
	case PanelTimezone:
		return "timezone"
	case PanelPeriod:
		return "period"
	case PanelTimeRanges:
		return "time-ranges"
	case PanelSparklineGrid:
		return "sparkline-grid"
	default:
		return "unknown"
	}
}

// State is the navigation state machine. Created once at startup and
// mutated only via its transition methods.
type State struct {
	screen Screen

	focusedPanel Panel
	savedPanel   Panel

	// Live cursors. Grid has a saved counterpart because the detail
	// screen navigates the same index sequentially.
	Service  Cursor
	Instance Cursor
	Grid     Cursor
	Timezone Cursor

	savedGridIndex int

	// committedInstance pins the instance selection captured at
	// drill-down; background reloads may move Instance freely
	// without changing what the metrics screens show.
	committedInstance    int
	committedInstanceSet bool

	loading Loading
}

// NewState returns the startup state: service list, nothing committed.
func NewState() *State {
	return &State{screen: ScreenServiceList}
}

// Screen returns the active screen.
func (s *State) Screen() Screen { return s.screen }

// FocusedPanel returns the panel focus inside the metrics summary.
func (s *State) FocusedPanel() Panel { return s.focusedPanel }

// SetFocusedPanel moves panel focus directly.
func (s *State) SetFocusedPanel(p Panel) { s.focusedPanel = p }

// NextPanel rotates focus Timezone → Period → TimeRanges → Grid → ...
func (s *State) NextPanel() {
	switch s.focusedPanel {
	case PanelTimezone:
		s.focusedPanel = PanelPeriod
	case PanelPeriod:
		s.focusedPanel = PanelTimeRanges
	case PanelTimeRanges:
		s.focusedPanel = PanelSparklineGrid
	default:
		s.focusedPanel = PanelTimezone
	}
}

// CanGoBack reports whether the active screen has a parent.
func (s *State) CanGoBack() bool { return s.screen != ScreenServiceList }

// CommittedInstance returns the pinned instance index, false when no
// drill-down is active.
func (s *State) CommittedInstance() (int, bool) {
	return s.committedInstance, s.committedInstanceSet
}

// SelectedInstance returns the instance index the active screen should
// display: the committed index on the metrics screens, the live
// cursor everywhere else.
func (s *State) SelectedInstance(instanceCount int) (int, bool) {
	if s.screen == ScreenMetricsSummary || s.screen == ScreenInstanceDetails {
		if s.committedInstanceSet && s.committedInstance < instanceCount {
			return s.committedInstance, true
		}
	}
	idx, ok := s.Instance.Selected()
	if !ok || idx >= instanceCount {
		return 0, false
	}
	return idx, true
}

// --- Screen transitions ---

// EnterInstanceList drills from the service list into the instance
// list of the highlighted service. No-op when no service is selected.
func (s *State) EnterInstanceList() bool {
	if s.screen != ScreenServiceList {
		return false
	}
	if _, ok := s.Service.Selected(); !ok {
		return false
	}
	s.screen = ScreenInstanceList
	// Instances load asynchronously; point at the first entry and let
	// the caller clamp once the list arrives.
	s.Instance = Cursor{index: 0, set: true}
	return true
}

// EnterMetricsSummary commits the highlighted instance and drills into
// the metrics summary. The grid cursor is (re)initialized from the
// metric count. No-op when no instance is selected.
func (s *State) EnterMetricsSummary(metricCount int) bool {
	if s.screen != ScreenInstanceList {
		return false
	}
	idx, ok := s.Instance.Selected()
	if !ok {
		return false
	}
	s.committedInstance = idx
	s.committedInstanceSet = true
	s.screen = ScreenMetricsSummary
	s.focusedPanel = PanelSparklineGrid
	s.InitGrid(metricCount)
	return true
}

// EnterInstanceDetails saves the panel focus and grid position, then
// drills into the single-metric detail screen.
func (s *State) EnterInstanceDetails() bool {
	if s.screen != ScreenMetricsSummary {
		return false
	}
	s.savedPanel = s.focusedPanel
	s.savedGridIndex = s.Grid.SelectedOr(0)
	s.screen = ScreenInstanceDetails
	return true
}

// BackToMetricsSummary returns from the detail screen. Panel focus is
// restored from the saved slot, but the grid cursor is deliberately
// NOT restored: whatever the detail screen scrolled to sticks, and the
// saved slot is overwritten with it.
func (s *State) BackToMetricsSummary() {
	s.screen = ScreenMetricsSummary
	s.focusedPanel = s.savedPanel
	s.savedGridIndex = s.Grid.SelectedOr(0)
}

// BackToList returns to the instance list. The instance cursor is
// restored from the committed index when still in range, falls back to
// the first instance, and clears on an empty list. The commitment is
// then released.
func (s *State) BackToList(instanceCount int) {
	s.screen = ScreenInstanceList
	switch {
	case s.committedInstanceSet && s.committedInstance < instanceCount:
		s.Instance.Select(s.committedInstance, instanceCount)
	case instanceCount > 0:
		s.Instance.Select(0, instanceCount)
	default:
		s.Instance.Clear()
	}
	s.committedInstance = 0
	s.committedInstanceSet = false
	s.resetPanels()
}

// BackToServiceList clears the selected service's data cursors and
// re-enters the loading state; the caller is expected to refetch the
// service list.
func (s *State) BackToServiceList() {
	s.screen = ScreenServiceList
	s.Instance.Clear()
	s.Grid.Clear()
	s.committedInstance = 0
	s.committedInstanceSet = false
	s.resetPanels()
	s.loading.Start()
}

// GoBack walks one step up the screen chain. On the service list it is
// a no-op. instanceCount feeds the BackToList cursor restore.
func (s *State) GoBack(instanceCount int) {
	switch s.screen {
	case ScreenInstanceDetails:
		s.BackToMetricsSummary()
	case ScreenMetricsSummary:
		s.BackToList(instanceCount)
	case ScreenInstanceList:
		s.BackToServiceList()
	}
}

// resetPanels puts panel focus and the grid save slots back to their
// defaults when leaving the metrics screens.
func (s *State) resetPanels() {
	s.focusedPanel = PanelTimezone
	s.savedPanel = PanelTimezone
	s.savedGridIndex = 0
}
