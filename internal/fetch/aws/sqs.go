package aws

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/providers"
)

// SQSClient lists SQS queues and samples their CloudWatch metrics.
// Implements fetch.Client.
type SQSClient struct {
	sqs     *sqs.Client
	sampler sampler
	desc    *providers.Descriptor
}

func NewSQSClient(ctx context.Context, region string) (*SQSClient, error) {
	desc, err := providers.Get("sqs")
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(ctx, region)
	if err != nil {
		return nil, err
	}

	return &SQSClient{
		sqs:     sqs.NewFromConfig(cfg),
		sampler: newSampler(cfg, desc),
		desc:    desc,
	}, nil
}

func (c *SQSClient) FetchInstances(ctx context.Context) ([]domain.Instance, error) {
	var instances []domain.Instance

	paginator := sqs.NewListQueuesPaginator(c.sqs, &sqs.ListQueuesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list queues: %w", classify(err))
		}

		for _, url := range page.QueueUrls {
			instances = append(instances, domain.Instance{
				ID:      queueName(url),
				Name:    queueName(url),
				Detail:  c.queueDetail(ctx, url),
				Service: c.desc.ServiceID,
			})
		}
	}

	return instances, nil
}

// queueDetail fetches the approximate depth for the list's secondary
// line. Attribute failures degrade to an empty detail rather than
// failing the listing.
func (c *SQSClient) queueDetail(ctx context.Context, queueURL string) string {
	resp, err := c.sqs.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl: &queueURL,
		AttributeNames: []sqstypes.QueueAttributeName{
			sqstypes.QueueAttributeNameApproximateNumberOfMessages,
		},
	})
	if err != nil {
		return ""
	}

	depth, ok := resp.Attributes[string(sqstypes.QueueAttributeNameApproximateNumberOfMessages)]
	if !ok {
		return ""
	}
	return depth + " messages"
}

func (c *SQSClient) FetchMetricSamples(ctx context.Context, instanceID string, start, end time.Time, periodSeconds int) (map[string]domain.RawSample, error) {
	return c.sampler.fetchAll(ctx, instanceID, start, end, periodSeconds)
}

// queueName extracts the queue name from its URL; CloudWatch dimensions
// use the name, not the URL.
func queueName(queueURL string) string {
	if i := strings.LastIndex(queueURL, "/"); i >= 0 {
		return queueURL[i+1:]
	}
	return queueURL
}
