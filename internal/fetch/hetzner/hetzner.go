// Package hetzner implements the fetch client for Hetzner Cloud
// servers on top of the hcloud API.
package hetzner

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/providers"
	"nathanbeddoewebdev/cloudpulse/internal/retry"
)

// Client lists Hetzner servers and samples their metrics. Implements
// fetch.Client.
type Client struct {
	hc   *hcloud.Client
	desc *providers.Descriptor
}

func New(token string, opts ...hcloud.ClientOption) (*Client, error) {
	desc, err := providers.Get("hetzner")
	if err != nil {
		return nil, err
	}

	defaults := []hcloud.ClientOption{
		hcloud.WithApplication("cloudpulse", "0.1.0"),
		hcloud.WithToken(token),
	}
	return &Client{
		hc:   hcloud.NewClient(append(defaults, opts...)...),
		desc: desc,
	}, nil
}

func (c *Client) FetchInstances(ctx context.Context) ([]domain.Instance, error) {
	var servers []*hcloud.Server
	err := retry.Do(ctx, retry.DefaultConfig(), retry.IsRetryable, func() error {
		var callErr error
		servers, callErr = c.hc.Server.All(ctx)
		return classify(callErr)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	instances := make([]domain.Instance, 0, len(servers))
	for _, s := range servers {
		instances = append(instances, domain.Instance{
			ID:      strconv.FormatInt(s.ID, 10),
			Name:    s.Name,
			Status:  string(s.Status),
			Detail:  serverDetail(s),
			Service: c.desc.ServiceID,
		})
	}
	return instances, nil
}

func (c *Client) FetchMetricSamples(ctx context.Context, instanceID string, start, end time.Time, periodSeconds int) (map[string]domain.RawSample, error) {
	serverID, err := strconv.ParseInt(instanceID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid server ID %q: %w", instanceID, domain.ErrNotFound)
	}

	step := periodSeconds
	if step < 1 {
		step = 1
	}
	opts := hcloud.ServerGetMetricsOpts{
		Types: []hcloud.ServerMetricType{
			hcloud.ServerMetricCPU,
			hcloud.ServerMetricDisk,
			hcloud.ServerMetricNetwork,
		},
		Start: start,
		End:   end,
		Step:  step,
	}

	var metrics *hcloud.ServerMetrics
	err = retry.Do(ctx, retry.DefaultConfig(), retry.IsRetryable, func() error {
		var callErr error
		metrics, _, callErr = c.hc.Server.GetMetrics(ctx, &hcloud.Server{ID: serverID}, opts)
		return classify(callErr)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get server metrics: %w", err)
	}

	return toRawSamples(metrics, c.desc), nil
}

// toRawSamples converts the hcloud response into the raw form the
// normalizer expects, keeping only catalog series. Values that cannot
// be parsed are silently skipped; validation catches the holes.
func toRawSamples(metrics *hcloud.ServerMetrics, desc *providers.Descriptor) map[string]domain.RawSample {
	out := make(map[string]domain.RawSample)
	if metrics == nil {
		return out
	}

	for name, values := range metrics.TimeSeries {
		if _, ok := desc.CatalogEntry(name); !ok {
			continue
		}

		sample := domain.RawSample{
			Values:     make([]float64, 0, len(values)),
			Timestamps: make([]time.Time, 0, len(values)),
		}
		for _, v := range values {
			f, err := strconv.ParseFloat(v.Value, 64)
			if err != nil {
				continue
			}
			sample.Values = append(sample.Values, f)
			sample.Timestamps = append(sample.Timestamps, time.Unix(int64(v.Timestamp), 0))
		}
		out[name] = sample
	}
	return out
}

func serverDetail(s *hcloud.Server) string {
	var parts []string
	if s.ServerType != nil {
		parts = append(parts, s.ServerType.Name)
	}
	if s.Datacenter != nil && s.Datacenter.Location != nil {
		parts = append(parts, s.Datacenter.Location.Name)
	}
	return strings.Join(parts, ", ")
}

// classify maps hcloud API errors onto the domain sentinels.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case hcloud.IsError(err, hcloud.ErrorCodeUnauthorized):
		return fmt.Errorf("%w: %v", domain.ErrCredentials, err)
	case hcloud.IsError(err, hcloud.ErrorCodeForbidden):
		return fmt.Errorf("%w: %v", domain.ErrPermission, err)
	case hcloud.IsError(err, hcloud.ErrorCodeRateLimitExceeded):
		return fmt.Errorf("%w: %v", domain.ErrThrottled, err)
	case hcloud.IsError(err, hcloud.ErrorCodeNotFound):
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	default:
		return err
	}
}
