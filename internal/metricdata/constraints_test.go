package metricdata

import "testing"

var queueRules = RuleSet{
	"NumberOfMessagesSent": {FatalBelow: Bound(0)},
	"ApproximateNumberOfMessagesVisible": {
		FatalBelow: Bound(0),
		WarnAbove:  Bound(1_000_000),
	},
	"ApproximateAgeOfOldestMessage": {
		FatalBelow:    Bound(0),
		WarnAbove:     Bound(1_209_600),
		WarnAboveNote: "possible retention issue",
	},
}

func TestRuleSet_NegativeCountIsFatal(t *testing.T) {
	r := queueRules.Check("NumberOfMessagesSent", -1)
	if r.Valid() {
		t.Fatal("expected negative count to be fatal")
	}
}

func TestRuleSet_SoftCeilingWarns(t *testing.T) {
	r := queueRules.Check("ApproximateNumberOfMessagesVisible", 2_000_000)
	if !r.Valid() {
		t.Fatalf("soft ceiling must not be fatal, got %v", r.Err)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", r.Warnings)
	}
}

func TestRuleSet_UnknownMetricPasses(t *testing.T) {
	r := queueRules.Check("SomethingNew", -123)
	if !r.Valid() || len(r.Warnings) != 0 {
		t.Errorf("unknown metric should pass, got err=%v warnings=%v", r.Err, r.Warnings)
	}
}

func TestRuleSet_CheckSeriesStopsAtFirstFatal(t *testing.T) {
	r := queueRules.CheckSeries("NumberOfMessagesSent", []float64{3, 1, -2, 9})
	if r.Valid() {
		t.Fatal("expected fatal report for series containing a negative count")
	}
}

func TestRuleSet_CheckSeriesAggregatesWarnings(t *testing.T) {
	r := queueRules.CheckSeries("ApproximateNumberOfMessagesVisible",
		[]float64{5, 2_000_000, 3_000_000})
	if !r.Valid() {
		t.Fatalf("expected valid report, got %v", r.Err)
	}
	if len(r.Warnings) != 2 {
		t.Errorf("expected two warnings, got %v", r.Warnings)
	}
}
