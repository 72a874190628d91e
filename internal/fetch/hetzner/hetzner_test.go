package hetzner

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/providers"
)

func TestToRawSamples(t *testing.T) {
	desc := providers.Hetzner()
	metrics := &hcloud.ServerMetrics{
		TimeSeries: map[string][]hcloud.ServerMetricsValue{
			"cpu": {
				{Timestamp: 1700000000, Value: "12.5"},
				{Timestamp: 1700000060, Value: "not-a-number"},
				{Timestamp: 1700000120, Value: "14"},
			},
			"uncataloged.series": {
				{Timestamp: 1700000000, Value: "1"},
			},
		},
	}

	got := toRawSamples(metrics, desc)
	if len(got) != 1 {
		t.Fatalf("expected only cataloged series, got %d", len(got))
	}

	cpu, ok := got["cpu"]
	if !ok {
		t.Fatal("cpu series missing")
	}
	if diff := cmp.Diff([]float64{12.5, 14}, cpu.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	want := []time.Time{time.Unix(1700000000, 0), time.Unix(1700000120, 0)}
	if diff := cmp.Diff(want, cpu.Timestamps); diff != "" {
		t.Errorf("timestamps mismatch (-want +got):\n%s", diff)
	}
}

func TestToRawSamples_NilMetrics(t *testing.T) {
	if got := toRawSamples(nil, providers.Hetzner()); len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		code hcloud.ErrorCode
		want error
	}{
		{hcloud.ErrorCodeUnauthorized, domain.ErrCredentials},
		{hcloud.ErrorCodeForbidden, domain.ErrPermission},
		{hcloud.ErrorCodeRateLimitExceeded, domain.ErrThrottled},
		{hcloud.ErrorCodeNotFound, domain.ErrNotFound},
	}
	for _, tt := range tests {
		err := classify(hcloud.Error{Code: tt.code, Message: "nope"})
		if !errors.Is(err, tt.want) {
			t.Errorf("classify(%s) = %v, want %v", tt.code, err, tt.want)
		}
	}

	plain := errors.New("boom")
	if classify(plain) != plain {
		t.Error("unrecognized errors must pass through unchanged")
	}
}

func TestServerDetail(t *testing.T) {
	s := &hcloud.Server{
		ServerType: &hcloud.ServerType{Name: "cx22"},
		Datacenter: &hcloud.Datacenter{Location: &hcloud.Location{Name: "fsn1"}},
	}
	if got := serverDetail(s); got != "cx22, fsn1" {
		t.Errorf("unexpected detail %q", got)
	}

	if got := serverDetail(&hcloud.Server{}); got != "" {
		t.Errorf("expected empty detail, got %q", got)
	}
}
