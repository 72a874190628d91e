package providers

import (
	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/metricdata"
)

// sqsMaxRetention is the longest message retention SQS supports, in
// seconds (14 days). An oldest-message age past it points at a
// misconfigured queue rather than real data.
const sqsMaxRetention = 14 * 24 * 60 * 60

// SQS describes the Amazon SQS telemetry surface: the CloudWatch
// AWS/SQS namespace scoped by QueueName.
func SQS() *Descriptor {
	return &Descriptor{
		ServiceID:   "sqs",
		DisplayName: "Amazon SQS",
		Namespace:   "AWS/SQS",
		Catalog: []domain.CatalogEntry{
			{Name: "NumberOfMessagesSent", Unit: "count", Statistic: domain.StatSum, Category: domain.CategoryCore},
			{Name: "NumberOfMessagesReceived", Unit: "count", Statistic: domain.StatSum, Category: domain.CategoryCore},
			{Name: "NumberOfMessagesDeleted", Unit: "count", Statistic: domain.StatSum, Category: domain.CategoryCore},
			{Name: "ApproximateNumberOfMessagesVisible", Unit: "count", Statistic: domain.StatAverage, Category: domain.CategoryCore},
			{Name: "ApproximateNumberOfMessagesNotVisible", Unit: "count", Statistic: domain.StatAverage, Category: domain.CategoryAdvanced},
			{Name: "ApproximateNumberOfMessagesDelayed", Unit: "count", Statistic: domain.StatAverage, Category: domain.CategoryAdvanced},
			{Name: "ApproximateAgeOfOldestMessage", Unit: "s", Statistic: domain.StatMaximum, Category: domain.CategoryPerformance},
			{Name: "NumberOfEmptyReceives", Unit: "count", Statistic: domain.StatSum, Category: domain.CategoryAdvanced},
			{Name: "SentMessageSize", Unit: "bytes", Statistic: domain.StatAverage, Category: domain.CategoryAdvanced},
		},
		Dimensions: map[string]string{
			DimInstance: "QueueName",
		},
		Rules: metricdata.RuleSet{
			"NumberOfMessagesSent":     {FatalBelow: metricdata.Bound(0)},
			"NumberOfMessagesReceived": {FatalBelow: metricdata.Bound(0)},
			"NumberOfMessagesDeleted":  {FatalBelow: metricdata.Bound(0)},
			"NumberOfEmptyReceives":    {FatalBelow: metricdata.Bound(0)},
			"SentMessageSize":          {FatalBelow: metricdata.Bound(0)},
			"ApproximateNumberOfMessagesVisible": {
				FatalBelow: metricdata.Bound(0),
				WarnAbove:  metricdata.Bound(1_000_000),
			},
			"ApproximateNumberOfMessagesNotVisible": {
				FatalBelow: metricdata.Bound(0),
				WarnAbove:  metricdata.Bound(1_000_000),
			},
			"ApproximateNumberOfMessagesDelayed": {FatalBelow: metricdata.Bound(0)},
			"ApproximateAgeOfOldestMessage": {
				FatalBelow:    metricdata.Bound(0),
				WarnAbove:     metricdata.Bound(sqsMaxRetention),
				WarnAboveNote: "possible retention issue",
			},
		},
		FormatName: splitCamel,
	}
}
