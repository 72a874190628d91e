package providers

import "testing"

func TestInstanceDimension(t *testing.T) {
	tests := []struct {
		service string
		want    string
	}{
		{"rds", "DBInstanceIdentifier"},
		{"sqs", "QueueName"},
		{"hetzner", "server"},
	}

	Reset()
	t.Cleanup(Reset)
	RegisterDefaults()

	for _, tt := range tests {
		d, err := Get(tt.service)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.service, err)
		}
		if got := d.InstanceDimension(); got != tt.want {
			t.Errorf("%s: expected dimension %q, got %q", tt.service, tt.want, got)
		}
	}

	bare := &Descriptor{ServiceID: "x"}
	if got := bare.InstanceDimension(); got != "InstanceId" {
		t.Errorf("expected fallback dimension, got %q", got)
	}
}

func TestMetricDisplayName(t *testing.T) {
	tests := []struct {
		service string
		raw     string
		want    string
	}{
		{"rds", "CPUUtilization", "CPU Utilization"},
		{"rds", "FreeStorageSpace", "Free Storage Space"},
		{"rds", "ReadIOPS", "Read IOPS"},
		{"rds", "NetworkReceiveThroughput", "Network Receive Throughput"},
		{"sqs", "ApproximateAgeOfOldestMessage", "Approximate Age Of Oldest Message"},
		{"sqs", "NumberOfMessagesSent", "Number Of Messages Sent"},
		{"hetzner", "cpu", "CPU"},
		{"hetzner", "disk.0.iops.read", "Disk IOPS Read"},
		{"hetzner", "network.0.bandwidth.in", "Network Bandwidth In"},
	}

	Reset()
	t.Cleanup(Reset)
	RegisterDefaults()

	for _, tt := range tests {
		d, err := Get(tt.service)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.service, err)
		}
		if got := d.MetricDisplayName(tt.raw); got != tt.want {
			t.Errorf("%s/%s: expected %q, got %q", tt.service, tt.raw, tt.want, got)
		}
	}

	bare := &Descriptor{ServiceID: "x"}
	if got := bare.MetricDisplayName("RawName"); got != "RawName" {
		t.Errorf("nil formatter should pass the raw name through, got %q", got)
	}
}

func TestCatalogEntryLookup(t *testing.T) {
	d := RDS()

	e, ok := d.CatalogEntry("CPUUtilization")
	if !ok {
		t.Fatal("expected catalog hit")
	}
	if e.Unit != "%" {
		t.Errorf("unexpected unit %q", e.Unit)
	}
	if d.MetricUnit("CPUUtilization") != "%" {
		t.Errorf("MetricUnit should read the catalog")
	}

	if _, ok := d.CatalogEntry("NoSuchMetric"); ok {
		t.Error("expected miss for unknown metric")
	}
	if d.MetricUnit("NoSuchMetric") != "" {
		t.Error("unknown metric should report an empty unit")
	}
}

func TestConstraints_QueueAgeWarning(t *testing.T) {
	rules := SQS().Constraints()

	r := rules.Check("ApproximateAgeOfOldestMessage", float64(sqsMaxRetention+1))
	if r.Err != nil {
		t.Fatalf("overflow age should warn, not reject: %v", r.Err)
	}
	if len(r.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", r.Warnings)
	}

	r = rules.Check("NumberOfMessagesSent", -1)
	if r.Err == nil {
		t.Error("negative message count must be rejected")
	}
}
