package metricdata

import (
	"errors"
	"math"
	"testing"
	"time"
)

func ts(offsets ...int) []time.Time {
	base := time.Now().Add(-time.Hour)
	out := make([]time.Time, len(offsets))
	for i, o := range offsets {
		out[i] = base.Add(time.Duration(o) * time.Minute)
	}
	return out
}

func TestValidate_EmptyData(t *testing.T) {
	r := Validate("m", nil, nil)
	if r.Valid() {
		t.Fatal("expected invalid report for empty arrays")
	}
	if !errors.Is(r.Err, ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", r.Err)
	}
}

func TestValidate_EmptyTimestampsOnly(t *testing.T) {
	r := Validate("m", []float64{1.0}, nil)
	if !errors.Is(r.Err, ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", r.Err)
	}
}

func TestValidate_LengthMismatch(t *testing.T) {
	r := Validate("m", []float64{1.0}, ts(0, 1))
	if !errors.Is(r.Err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", r.Err)
	}
}

func TestValidate_NoFiniteValues(t *testing.T) {
	r := Validate("m", []float64{math.NaN(), math.Inf(1)}, ts(0, 1))
	if !errors.Is(r.Err, ErrNoFiniteValues) {
		t.Errorf("expected ErrNoFiniteValues, got %v", r.Err)
	}
}

func TestValidate_PartialNonFiniteIsWarningOnly(t *testing.T) {
	r := Validate("m", []float64{1.0, math.NaN(), 3.0}, ts(0, 1, 2))
	if !r.Valid() {
		t.Fatalf("expected valid report, got error %v", r.Err)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a warning about non-finite values")
	}
}

func TestValidate_UnorderedTimestampsFatal(t *testing.T) {
	// Second timestamp steps back five minutes, far past jitter.
	r := Validate("m", []float64{1.0, 2.0, 3.0}, ts(0, 10, 5))
	if !errors.Is(r.Err, ErrUnorderedTimestamps) {
		t.Errorf("expected ErrUnorderedTimestamps, got %v", r.Err)
	}
}

func TestValidate_SubSecondJitterIsWarningOnly(t *testing.T) {
	base := time.Now().Add(-time.Hour)
	stamps := []time.Time{
		base,
		base.Add(time.Minute),
		base.Add(time.Minute).Add(-500 * time.Millisecond),
	}

	r := Validate("m", []float64{1.0, 2.0, 3.0}, stamps)
	if !r.Valid() {
		t.Fatalf("expected jitter within tolerance to pass, got %v", r.Err)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a warning about jittered timestamps")
	}
}

func TestValidate_StaleAndFutureTimestampsWarn(t *testing.T) {
	stamps := []time.Time{
		time.Now().Add(-2 * 365 * 24 * time.Hour),
		time.Now().Add(time.Hour),
	}

	r := Validate("m", []float64{1.0, 2.0}, stamps)
	if !r.Valid() {
		t.Fatalf("expected valid report, got %v", r.Err)
	}
	if len(r.Warnings) != 2 {
		t.Errorf("expected stale and future warnings, got %v", r.Warnings)
	}
}

func TestValidate_CleanData(t *testing.T) {
	r := Validate("m", []float64{1.0, 2.0, 3.0}, ts(0, 1, 2))
	if !r.Valid() || len(r.Warnings) != 0 {
		t.Errorf("expected clean report, got err=%v warnings=%v", r.Err, r.Warnings)
	}
}
