package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/metricdata"
)

type fakeSource struct {
	service string
	rules   metricdata.RuleSet
}

func (f fakeSource) Service() string { return f.service }

func (f fakeSource) MetricDisplayName(raw string) string { return "Metric " + raw }

func (f fakeSource) MetricUnit(raw string) string { return "count" }

func (f fakeSource) Constraints() metricdata.RuleSet { return f.rules }

func stamps(n int) []time.Time {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = base.Add(time.Duration(i) * time.Minute)
	}
	return out
}

func TestNormalize_BadMetricDoesNotBlockBatch(t *testing.T) {
	src := fakeSource{service: "rds"}
	raw := map[string]domain.RawSample{
		"good":     {Values: []float64{1, 2, 3}, Timestamps: stamps(3)},
		"empty":    {},
		"mismatch": {Values: []float64{1, 2}, Timestamps: stamps(3)},
		"allnan":   {Values: []float64{math.NaN(), math.NaN()}, Timestamps: stamps(2)},
	}

	got := Normalize(src, raw)
	if len(got) != 1 {
		t.Fatalf("expected only the good metric to survive, got %d series", len(got))
	}
	if got[0].RawName != "good" {
		t.Errorf("unexpected survivor %q", got[0].RawName)
	}
	if got[0].SourceService != "rds" {
		t.Errorf("series must carry the source service, got %q", got[0].SourceService)
	}
}

func TestNormalize_SanitizesGaps(t *testing.T) {
	src := fakeSource{service: "sqs"}
	raw := map[string]domain.RawSample{
		"depth": {Values: []float64{1, math.NaN(), 3}, Timestamps: stamps(3)},
	}

	got := Normalize(src, raw)
	if len(got) != 1 {
		t.Fatalf("expected one series, got %d", len(got))
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, got[0].History); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_ConstraintRejection(t *testing.T) {
	src := fakeSource{
		service: "sqs",
		rules: metricdata.RuleSet{
			"sent": {FatalBelow: metricdata.Bound(0)},
		},
	}
	raw := map[string]domain.RawSample{
		"sent":  {Values: []float64{5, -1, 7}, Timestamps: stamps(3)},
		"other": {Values: []float64{5, 6, 7}, Timestamps: stamps(3)},
	}

	got := Normalize(src, raw)
	if len(got) != 1 || got[0].RawName != "other" {
		t.Fatalf("expected the constrained metric dropped, got %+v", got)
	}
}

func TestNormalize_SortedByDisplayName(t *testing.T) {
	src := fakeSource{service: "rds"}
	raw := map[string]domain.RawSample{
		"zeta":  {Values: []float64{1}, Timestamps: stamps(1)},
		"alpha": {Values: []float64{1}, Timestamps: stamps(1)},
		"mid":   {Values: []float64{1}, Timestamps: stamps(1)},
	}

	got := Normalize(src, raw)
	want := []string{"Metric alpha", "Metric mid", "Metric zeta"}
	names := make([]string, len(got))
	for i, s := range got {
		names[i] = s.DisplayName
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_ReplaceIsWholesale(t *testing.T) {
	var c Collection
	c.Replace([]domain.Series{{DisplayName: "A"}, {DisplayName: "B"}})

	if c.Len() != 2 {
		t.Fatalf("expected 2 series, got %d", c.Len())
	}
	if s, ok := c.At(1); !ok || s.DisplayName != "B" {
		t.Errorf("unexpected series at 1: %+v ok=%v", s, ok)
	}
	if _, ok := c.At(2); ok {
		t.Error("expected miss past the end")
	}

	c.Replace(nil)
	if c.Len() != 0 {
		t.Error("replace must drop the previous batch entirely")
	}
	if names := c.DisplayNames(); len(names) != 0 {
		t.Errorf("expected no names, got %v", names)
	}
}
