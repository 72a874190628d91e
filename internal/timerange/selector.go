package timerange

// Selector owns the active time range, the optional explicit period
// selection, and the two picker cursors. All mutation goes through
// named methods so the invariant "the selected period is always legal
// for the active range" holds at every exit.
type Selector struct {
	rangeIdx int
	rng      Range

	// period is the explicit user selection in seconds; nil means
	// "auto" (derive from the range).
	period    *int
	periodIdx int
}

// NewSelector starts on the default range with no explicit period.
func NewSelector() *Selector {
	opts := Options()
	return &Selector{
		rangeIdx: DefaultOptionIndex,
		rng:      opts[DefaultOptionIndex].Range(),
	}
}

// ActiveRange returns the currently selected time range.
func (s *Selector) ActiveRange() Range { return s.rng }

// RangeIndex returns the cursor position in the range picker.
func (s *Selector) RangeIndex() int { return s.rangeIdx }

// PeriodIndex returns the cursor position in the period picker.
func (s *Selector) PeriodIndex() int { return s.periodIdx }

// HasExplicitPeriod reports whether the user pinned a period.
func (s *Selector) HasExplicitPeriod() bool { return s.period != nil }

// PeriodOptions returns the legal periods for the active range.
func (s *Selector) PeriodOptions() []PeriodOption {
	return PeriodOptions(s.rng)
}

// SelectRange replaces the active range by picker index and
// immediately revalidates the period selection against the new range.
// Out-of-range indexes are ignored.
func (s *Selector) SelectRange(idx int) {
	opts := Options()
	if idx < 0 || idx >= len(opts) {
		return
	}
	s.rangeIdx = idx
	s.rng = opts[idx].Range()
	s.ValidatePeriodSelection()
}

// RangeNext moves the range cursor forward, wrapping at the end.
func (s *Selector) RangeNext() {
	s.SelectRange((s.rangeIdx + 1) % len(Options()))
}

// RangePrev moves the range cursor backward, wrapping at the start.
func (s *Selector) RangePrev() {
	n := len(Options())
	s.SelectRange((s.rangeIdx - 1 + n) % n)
}

// SelectPeriod pins an explicit period by picker index.
// Out-of-range indexes are ignored.
func (s *Selector) SelectPeriod(idx int) {
	opts := s.PeriodOptions()
	if idx < 0 || idx >= len(opts) {
		return
	}
	s.periodIdx = idx
	seconds := opts[idx].Seconds
	s.period = &seconds
}

// PeriodNext moves the period cursor forward, wrapping, and pins the
// period it lands on.
func (s *Selector) PeriodNext() {
	s.SelectPeriod((s.periodIdx + 1) % len(s.PeriodOptions()))
}

// PeriodPrev moves the period cursor backward, wrapping, and pins the
// period it lands on.
func (s *Selector) PeriodPrev() {
	n := len(s.PeriodOptions())
	s.SelectPeriod((s.periodIdx - 1 + n) % n)
}

// ClearPeriod reverts to automatic period derivation.
func (s *Selector) ClearPeriod() { s.period = nil }

// ValidatePeriodSelection keeps an explicit period legal after the
// range changed: if it is no longer offered, it is reassigned to the
// option with the smallest absolute seconds difference (ties resolve
// toward the smaller period) and the cursor follows.
func (s *Selector) ValidatePeriodSelection() {
	opts := s.PeriodOptions()

	if s.period == nil {
		if s.periodIdx >= len(opts) {
			s.periodIdx = len(opts) - 1
		}
		return
	}

	for i, opt := range opts {
		if opt.Seconds == *s.period {
			s.periodIdx = i
			return
		}
	}

	nearest, ok := NearestPeriod(opts, *s.period)
	if !ok {
		s.period = nil
		s.periodIdx = 0
		return
	}
	seconds := nearest.Seconds
	s.period = &seconds
	for i, opt := range opts {
		if opt.Seconds == seconds {
			s.periodIdx = i
			break
		}
	}
}

// EffectivePeriod returns the explicit selection when present,
// otherwise the deterministic default for the active range. The
// result is always a member of PeriodOptions(ActiveRange()).
func (s *Selector) EffectivePeriod() int {
	if s.period != nil {
		return *s.period
	}
	return AutoPeriod(s.rng)
}
