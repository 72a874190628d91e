package aws

import (
	"context"
	"fmt"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/providers"
)

// RDSClient lists RDS database instances and samples their CloudWatch
// metrics. Implements fetch.Client.
type RDSClient struct {
	rds     *rds.Client
	sampler sampler
	desc    *providers.Descriptor
}

func NewRDSClient(ctx context.Context, region string) (*RDSClient, error) {
	desc, err := providers.Get("rds")
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(ctx, region)
	if err != nil {
		return nil, err
	}

	return &RDSClient{
		rds:     rds.NewFromConfig(cfg),
		sampler: newSampler(cfg, desc),
		desc:    desc,
	}, nil
}

func (c *RDSClient) FetchInstances(ctx context.Context) ([]domain.Instance, error) {
	var instances []domain.Instance

	paginator := rds.NewDescribeDBInstancesPaginator(c.rds, &rds.DescribeDBInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list database instances: %w", classify(err))
		}

		for _, db := range page.DBInstances {
			id := awssdk.ToString(db.DBInstanceIdentifier)
			instances = append(instances, domain.Instance{
				ID:     id,
				Name:   id,
				Status: awssdk.ToString(db.DBInstanceStatus),
				Detail: fmt.Sprintf("%s %s, %s",
					awssdk.ToString(db.Engine),
					awssdk.ToString(db.EngineVersion),
					awssdk.ToString(db.DBInstanceClass)),
				Service: c.desc.ServiceID,
			})
		}
	}

	return instances, nil
}

func (c *RDSClient) FetchMetricSamples(ctx context.Context, instanceID string, start, end time.Time, periodSeconds int) (map[string]domain.RawSample, error) {
	return c.sampler.fetchAll(ctx, instanceID, start, end, periodSeconds)
}
