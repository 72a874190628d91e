package nav

// gridColumns is the fixed column count of the sparkline grid.
const gridColumns = 2

// GridPageSize is how many metrics one summary page shows.
const GridPageSize = 6

// InitGrid points the grid cursor at the first metric, or clears it
// when there are none. The saved slot follows so a later drill-down
// starts from a consistent pair.
func (s *State) InitGrid(metricCount int) {
	if metricCount > 0 {
		s.Grid.Select(0, metricCount)
	} else {
		s.Grid.Clear()
	}
	s.savedGridIndex = s.Grid.SelectedOr(0)
}

// SavedGridIndex returns the grid index captured at drill-down time.
func (s *State) SavedGridIndex() int { return s.savedGridIndex }

// GridScrollUp moves one row up (−columns), clamped at the first row.
func (s *State) GridScrollUp(metricCount int) {
	idx, ok := s.Grid.Selected()
	if !ok || metricCount <= 0 {
		return
	}
	if idx >= gridColumns {
		s.Grid.Select(idx-gridColumns, metricCount)
	}
}

// GridScrollDown moves one row down (+columns), clamped: when no cell
// exists directly below, the cursor stays put rather than wrapping.
func (s *State) GridScrollDown(metricCount int) {
	idx, ok := s.Grid.Selected()
	if !ok || metricCount <= 0 {
		return
	}
	if next := idx + gridColumns; next < metricCount {
		s.Grid.Select(next, metricCount)
	}
}

// GridScrollLeft moves one cell left within the row; column 0 no-ops.
func (s *State) GridScrollLeft(metricCount int) {
	idx, ok := s.Grid.Selected()
	if !ok || metricCount <= 0 {
		return
	}
	if idx%gridColumns != 0 {
		s.Grid.Select(idx-1, metricCount)
	}
}

// GridScrollRight moves one cell right within the row; it no-ops at
// the rightmost column and when the neighbor cell does not exist.
func (s *State) GridScrollRight(metricCount int) {
	idx, ok := s.Grid.Selected()
	if !ok || metricCount <= 0 {
		return
	}
	if idx%gridColumns == 0 && idx+1 < metricCount {
		s.Grid.Select(idx+1, metricCount)
	}
}

// SequentialNext moves the grid cursor forward by one, ignoring row
// boundaries. Used by the detail screen, which presents the metrics as
// a flat sequence. Clamped at the last metric.
func (s *State) SequentialNext(metricCount int) {
	idx, ok := s.Grid.Selected()
	if !ok || metricCount <= 0 {
		return
	}
	if idx+1 < metricCount {
		s.Grid.Select(idx+1, metricCount)
	}
}

// SequentialPrev moves the grid cursor backward by one, clamped at 0.
func (s *State) SequentialPrev(metricCount int) {
	idx, ok := s.Grid.Selected()
	if !ok || metricCount <= 0 {
		return
	}
	if idx > 0 {
		s.Grid.Select(idx-1, metricCount)
	}
}

// GridWindow returns the half-open [start, end) slice of metric
// indices visible on the page containing the cursor. The rendering
// layer reads exactly this window.
func (s *State) GridWindow(metricCount int) (start, end int) {
	if metricCount <= 0 {
		return 0, 0
	}
	idx := s.Grid.SelectedOr(0)
	page := idx / GridPageSize
	start = page * GridPageSize
	end = start + GridPageSize
	if end > metricCount {
		end = metricCount
	}
	return start, end
}
