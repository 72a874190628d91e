package aws

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"golang.org/x/sync/errgroup"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/providers"
	"nathanbeddoewebdev/cloudpulse/internal/retry"
)

// maxParallelMetricQueries caps concurrent GetMetricStatistics calls
// per refresh so one refresh cannot trip the CloudWatch rate limit by
// itself.
const maxParallelMetricQueries = 4

// sampler queries CloudWatch statistics for every catalog metric of
// one descriptor. Shared by the RDS and SQS clients.
type sampler struct {
	cw   *cloudwatch.Client
	desc *providers.Descriptor
}

func newSampler(cfg awssdk.Config, desc *providers.Descriptor) sampler {
	return sampler{cw: cloudwatch.NewFromConfig(cfg), desc: desc}
}

func (s *sampler) fetchAll(ctx context.Context, instanceID string, start, end time.Time, periodSeconds int) (map[string]domain.RawSample, error) {
	var mu sync.Mutex
	out := make(map[string]domain.RawSample, len(s.desc.Catalog))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelMetricQueries)

	for _, entry := range s.desc.Catalog {
		g.Go(func() error {
			sample, err := s.fetchOne(ctx, entry, instanceID, start, end, periodSeconds)
			if err != nil {
				return fmt.Errorf("metric %s: %w", entry.Name, err)
			}
			mu.Lock()
			out[entry.Name] = sample
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *sampler) fetchOne(ctx context.Context, entry domain.CatalogEntry, instanceID string, start, end time.Time, periodSeconds int) (domain.RawSample, error) {
	input := &cloudwatch.GetMetricStatisticsInput{
		Namespace:  awssdk.String(s.desc.Namespace),
		MetricName: awssdk.String(entry.Name),
		Dimensions: []cwtypes.Dimension{{
			Name:  awssdk.String(s.desc.InstanceDimension()),
			Value: awssdk.String(instanceID),
		}},
		StartTime:  awssdk.Time(start),
		EndTime:    awssdk.Time(end),
		Period:     awssdk.Int32(int32(periodSeconds)),
		Statistics: []cwtypes.Statistic{cwtypes.Statistic(entry.Statistic)},
	}

	var resp *cloudwatch.GetMetricStatisticsOutput
	err := retry.Do(ctx, retry.DefaultConfig(), retry.IsRetryable, func() error {
		var callErr error
		resp, callErr = s.cw.GetMetricStatistics(ctx, input)
		return classify(callErr)
	})
	if err != nil {
		return domain.RawSample{}, err
	}

	points := resp.Datapoints
	sort.Slice(points, func(i, j int) bool {
		return points[i].Timestamp.Before(*points[j].Timestamp)
	})

	sample := domain.RawSample{
		Values:     make([]float64, 0, len(points)),
		Timestamps: make([]time.Time, 0, len(points)),
	}
	for _, p := range points {
		sample.Values = append(sample.Values, statValue(p, entry.Statistic))
		sample.Timestamps = append(sample.Timestamps, awssdk.ToTime(p.Timestamp))
	}
	return sample, nil
}

func statValue(p cwtypes.Datapoint, stat domain.Statistic) float64 {
	switch stat {
	case domain.StatSum:
		return awssdk.ToFloat64(p.Sum)
	case domain.StatMaximum:
		return awssdk.ToFloat64(p.Maximum)
	case domain.StatMinimum:
		return awssdk.ToFloat64(p.Minimum)
	default:
		return awssdk.ToFloat64(p.Average)
	}
}
