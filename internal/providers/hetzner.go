package providers

import (
	"strings"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/metricdata"
)

// Hetzner describes the Hetzner Cloud server telemetry surface. The
// hcloud metrics API keys series by dotted path ("cpu",
// "disk.0.iops.read", "network.0.bandwidth.in") rather than camel case,
// so it carries its own formatter.
func Hetzner() *Descriptor {
	return &Descriptor{
		ServiceID:   "hetzner",
		DisplayName: "Hetzner Cloud",
		Namespace:   "hcloud/server",
		Catalog: []domain.CatalogEntry{
			{Name: "cpu", Unit: "%", Statistic: domain.StatAverage, Category: domain.CategoryCore},
			{Name: "disk.0.iops.read", Unit: "count/s", Statistic: domain.StatAverage, Category: domain.CategoryPerformance},
			{Name: "disk.0.iops.write", Unit: "count/s", Statistic: domain.StatAverage, Category: domain.CategoryPerformance},
			{Name: "disk.0.bandwidth.read", Unit: "bytes/s", Statistic: domain.StatAverage, Category: domain.CategoryStorage},
			{Name: "disk.0.bandwidth.write", Unit: "bytes/s", Statistic: domain.StatAverage, Category: domain.CategoryStorage},
			{Name: "network.0.pps.in", Unit: "count/s", Statistic: domain.StatAverage, Category: domain.CategoryNetwork},
			{Name: "network.0.pps.out", Unit: "count/s", Statistic: domain.StatAverage, Category: domain.CategoryNetwork},
			{Name: "network.0.bandwidth.in", Unit: "bytes/s", Statistic: domain.StatAverage, Category: domain.CategoryNetwork},
			{Name: "network.0.bandwidth.out", Unit: "bytes/s", Statistic: domain.StatAverage, Category: domain.CategoryNetwork},
		},
		Dimensions: map[string]string{
			DimInstance: "server",
		},
		Rules: metricdata.RuleSet{
			"cpu": {
				FatalBelow: metricdata.Bound(0),
			},
			"disk.0.iops.read":       {FatalBelow: metricdata.Bound(0)},
			"disk.0.iops.write":      {FatalBelow: metricdata.Bound(0)},
			"disk.0.bandwidth.read":  {FatalBelow: metricdata.Bound(0)},
			"disk.0.bandwidth.write": {FatalBelow: metricdata.Bound(0)},
			"network.0.pps.in":       {FatalBelow: metricdata.Bound(0)},
			"network.0.pps.out":      {FatalBelow: metricdata.Bound(0)},
			"network.0.bandwidth.in": {FatalBelow: metricdata.Bound(0)},
			"network.0.bandwidth.out": {
				FatalBelow: metricdata.Bound(0),
			},
		},
		FormatName: formatHetznerSeries,
	}
}

// formatHetznerSeries turns a dotted hcloud series path into a short
// label: "disk.0.iops.read" becomes "Disk IOPS Read".
func formatHetznerSeries(raw string) string {
	parts := strings.Split(raw, ".")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		switch p {
		case "0", "":
			continue
		case "cpu":
			words = append(words, "CPU")
		case "iops":
			words = append(words, "IOPS")
		case "pps":
			words = append(words, "PPS")
		case "in":
			words = append(words, "In")
		case "out":
			words = append(words, "Out")
		default:
			words = append(words, strings.ToUpper(p[:1])+p[1:])
		}
	}
	return strings.Join(words, " ")
}
