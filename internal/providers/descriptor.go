// Package providers maps service identifiers to telemetry descriptors:
// which namespace to query, which metrics exist, how dimensions are
// named, and how raw samples become unified series. Pure in-memory
// lookup; the network clients live elsewhere.
package providers

import (
	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/metricdata"
	"nathanbeddoewebdev/cloudpulse/internal/metrics"
)

// DimInstance is the generic dimension key every descriptor maps to
// its provider-specific instance filter.
const DimInstance = "instance_id"

// Descriptor describes one service's telemetry surface. Immutable
// after registration.
type Descriptor struct {
	// ServiceID is the registry key ("rds", "sqs", "hetzner").
	ServiceID string

	// DisplayName is the service label shown in the picker.
	DisplayName string

	// Namespace is the provider-side metric grouping key
	// ("AWS/RDS", "AWS/SQS", "hcloud/server").
	Namespace string

	// Catalog lists the metrics worth querying for this service.
	Catalog []domain.CatalogEntry

	// Dimensions maps generic keys to provider-specific dimension
	// names, e.g. instance_id → DBInstanceIdentifier.
	Dimensions map[string]string

	// Constraints is the per-metric plausibility rule table applied
	// during normalization.
	Rules metricdata.RuleSet

	// FormatName renders a raw metric name for display. Nil means
	// the raw name is shown as-is.
	FormatName func(raw string) string
}

// InstanceDimension returns the provider-specific dimension name used
// to scope metric queries to one instance.
func (d *Descriptor) InstanceDimension() string {
	if v, ok := d.Dimensions[DimInstance]; ok {
		return v
	}
	return "InstanceId"
}

// CatalogEntry looks up a catalog entry by raw metric name.
func (d *Descriptor) CatalogEntry(name string) (domain.CatalogEntry, bool) {
	for _, e := range d.Catalog {
		if e.Name == name {
			return e, true
		}
	}
	return domain.CatalogEntry{}, false
}

// --- metrics.Source implementation ---

// Service returns the registry id; part of the normalizer contract.
func (d *Descriptor) Service() string { return d.ServiceID }

// MetricDisplayName renders a raw metric name for display.
func (d *Descriptor) MetricDisplayName(raw string) string {
	if d.FormatName != nil {
		return d.FormatName(raw)
	}
	return raw
}

// MetricUnit returns the catalog unit for a raw name, empty when the
// metric is not cataloged or carries no unit.
func (d *Descriptor) MetricUnit(raw string) string {
	if e, ok := d.CatalogEntry(raw); ok {
		return e.Unit
	}
	return ""
}

// Constraints returns the plausibility rule table.
func (d *Descriptor) Constraints() metricdata.RuleSet { return d.Rules }

// Transform runs a raw fetch result through the normalization
// pipeline, yielding the sorted unified series collection for this
// service. Broken metrics are dropped individually, never the batch.
func (d *Descriptor) Transform(raw map[string]domain.RawSample) []domain.Series {
	return metrics.Normalize(d, raw)
}
