// Package fetch defines the contract between the dashboard and the
// per-service telemetry clients, plus the generation guard that keeps
// superseded responses from reaching the screen.
package fetch

import (
	"context"
	"time"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
)

// Client fetches instances and raw metric samples for one service.
// Implementations live under fetch/aws and fetch/hetzner; they return
// samples untouched and leave validation to the normalizer.
type Client interface {
	// FetchInstances lists the instances the account can see.
	FetchInstances(ctx context.Context) ([]domain.Instance, error)

	// FetchMetricSamples queries every catalog metric for one
	// instance over [start, end) at the given period in seconds.
	FetchMetricSamples(ctx context.Context, instanceID string, start, end time.Time, periodSeconds int) (map[string]domain.RawSample, error)
}
