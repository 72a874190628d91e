package timerange

import "testing"

func rangeIndexOf(t *testing.T, label string) int {
	t.Helper()
	for i, opt := range Options() {
		if opt.Label == label {
			return i
		}
	}
	t.Fatalf("no range option labeled %q", label)
	return -1
}

func TestSelector_EffectivePeriodAlwaysLegal(t *testing.T) {
	s := NewSelector()

	for i := range Options() {
		s.SelectRange(i)
		eff := s.EffectivePeriod()

		legal := false
		for _, p := range s.PeriodOptions() {
			if p.Seconds == eff {
				legal = true
				break
			}
		}
		if !legal {
			t.Errorf("range %q: effective period %d not in options",
				Options()[i].Label, eff)
		}
	}
}

func TestSelector_ExplicitPeriodSurvivesCompatibleRangeChange(t *testing.T) {
	s := NewSelector()
	s.SelectRange(rangeIndexOf(t, "1 hour"))

	// Pin 5 minutes, legal in both the high-res and standard tiers.
	s.SelectPeriod(5)
	if got := s.EffectivePeriod(); got != 300 {
		t.Fatalf("expected pinned period 300, got %d", got)
	}

	s.SelectRange(rangeIndexOf(t, "2 days"))
	if got := s.EffectivePeriod(); got != 300 {
		t.Errorf("period should survive compatible range change, got %d", got)
	}
	if idx := s.PeriodIndex(); s.PeriodOptions()[idx].Seconds != 300 {
		t.Errorf("period cursor should track the kept selection, got index %d", idx)
	}
}

func TestSelector_InvalidPeriodReassignedToNearest(t *testing.T) {
	s := NewSelector()
	s.SelectRange(rangeIndexOf(t, "1 hour"))

	// Pin 10 seconds, only legal in the high-resolution tier.
	s.SelectPeriod(1)
	if got := s.EffectivePeriod(); got != 10 {
		t.Fatalf("expected pinned period 10, got %d", got)
	}

	// Standard tier offers 60/300/900/3600: nearest to 10 is 60.
	s.SelectRange(rangeIndexOf(t, "2 days"))
	if got := s.EffectivePeriod(); got != 60 {
		t.Errorf("expected reassignment to 60, got %d", got)
	}
	if idx := s.PeriodIndex(); s.PeriodOptions()[idx].Seconds != 60 {
		t.Errorf("period cursor should follow reassignment, got index %d", idx)
	}
}

func TestSelector_ReassignmentAcrossAllTiers(t *testing.T) {
	s := NewSelector()
	s.SelectRange(rangeIndexOf(t, "1 hour"))

	// Pin 5 seconds, then jump straight to the coarse tier: the
	// nearest legal option there is one hour.
	s.SelectPeriod(0)
	s.SelectRange(rangeIndexOf(t, "3 months"))
	if got := s.EffectivePeriod(); got != 3600 {
		t.Errorf("expected reassignment to 3600, got %d", got)
	}
}

func TestSelector_RangeCursorWraps(t *testing.T) {
	s := NewSelector()
	s.SelectRange(0)

	s.RangePrev()
	if got := s.RangeIndex(); got != len(Options())-1 {
		t.Errorf("expected wrap to last option, got %d", got)
	}

	s.RangeNext()
	if got := s.RangeIndex(); got != 0 {
		t.Errorf("expected wrap back to first option, got %d", got)
	}
}

func TestSelector_PeriodCursorWrapsAndPins(t *testing.T) {
	s := NewSelector()
	s.SelectRange(rangeIndexOf(t, "1 hour"))

	s.PeriodPrev()
	opts := s.PeriodOptions()
	if got := s.PeriodIndex(); got != len(opts)-1 {
		t.Errorf("expected wrap to last period, got %d", got)
	}
	if !s.HasExplicitPeriod() {
		t.Error("scrolling the period picker should pin an explicit period")
	}
}

func TestSelector_ClearPeriodRevertsToAuto(t *testing.T) {
	s := NewSelector()
	s.SelectRange(rangeIndexOf(t, "1 hour"))
	s.SelectPeriod(0)
	s.ClearPeriod()

	if s.HasExplicitPeriod() {
		t.Error("expected explicit period cleared")
	}
	if got, want := s.EffectivePeriod(), AutoPeriod(s.ActiveRange()); got != want {
		t.Errorf("expected auto period %d, got %d", want, got)
	}
}
