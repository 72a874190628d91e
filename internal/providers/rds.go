package providers

import (
	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/metricdata"
)

// RDS describes the Amazon RDS telemetry surface: the CloudWatch
// AWS/RDS namespace scoped by DBInstanceIdentifier.
func RDS() *Descriptor {
	return &Descriptor{
		ServiceID:   "rds",
		DisplayName: "Amazon RDS",
		Namespace:   "AWS/RDS",
		Catalog: []domain.CatalogEntry{
			{Name: "CPUUtilization", Unit: "%", Statistic: domain.StatAverage, Category: domain.CategoryCore},
			{Name: "DatabaseConnections", Unit: "count", Statistic: domain.StatAverage, Category: domain.CategoryCore},
			{Name: "FreeableMemory", Unit: "bytes", Statistic: domain.StatAverage, Category: domain.CategoryCore},
			{Name: "FreeStorageSpace", Unit: "bytes", Statistic: domain.StatAverage, Category: domain.CategoryStorage},
			{Name: "ReadIOPS", Unit: "count/s", Statistic: domain.StatAverage, Category: domain.CategoryPerformance},
			{Name: "WriteIOPS", Unit: "count/s", Statistic: domain.StatAverage, Category: domain.CategoryPerformance},
			{Name: "ReadLatency", Unit: "s", Statistic: domain.StatAverage, Category: domain.CategoryPerformance},
			{Name: "WriteLatency", Unit: "s", Statistic: domain.StatAverage, Category: domain.CategoryPerformance},
			{Name: "ReadThroughput", Unit: "bytes/s", Statistic: domain.StatAverage, Category: domain.CategoryPerformance},
			{Name: "WriteThroughput", Unit: "bytes/s", Statistic: domain.StatAverage, Category: domain.CategoryPerformance},
			{Name: "NetworkReceiveThroughput", Unit: "bytes/s", Statistic: domain.StatAverage, Category: domain.CategoryNetwork},
			{Name: "NetworkTransmitThroughput", Unit: "bytes/s", Statistic: domain.StatAverage, Category: domain.CategoryNetwork},
			{Name: "SwapUsage", Unit: "bytes", Statistic: domain.StatAverage, Category: domain.CategoryAdvanced},
			{Name: "DiskQueueDepth", Unit: "count", Statistic: domain.StatAverage, Category: domain.CategoryAdvanced},
			{Name: "BurstBalance", Unit: "%", Statistic: domain.StatAverage, Category: domain.CategoryAdvanced},
		},
		Dimensions: map[string]string{
			DimInstance: "DBInstanceIdentifier",
		},
		Rules: metricdata.RuleSet{
			"CPUUtilization":      {FatalBelow: metricdata.Bound(0)},
			"DatabaseConnections": {FatalBelow: metricdata.Bound(0)},
			"FreeableMemory":      {FatalBelow: metricdata.Bound(0)},
			"FreeStorageSpace":    {FatalBelow: metricdata.Bound(0)},
			"ReadIOPS":            {FatalBelow: metricdata.Bound(0)},
			"WriteIOPS":           {FatalBelow: metricdata.Bound(0)},
			"ReadLatency":         {FatalBelow: metricdata.Bound(0)},
			"WriteLatency":        {FatalBelow: metricdata.Bound(0)},
			"DiskQueueDepth":      {FatalBelow: metricdata.Bound(0)},
			"BurstBalance": {
				FatalBelow: metricdata.Bound(0),
				WarnAbove:  metricdata.Bound(100),
			},
		},
		FormatName: splitCamel,
	}
}
