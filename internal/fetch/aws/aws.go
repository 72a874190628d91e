// Package aws implements the fetch clients for AWS-backed services.
// RDS and SQS share the CloudWatch statistics sampler; each service
// adds its own instance listing.
package aws

import (
	"context"
	"errors"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/smithy-go"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
)

// LoadConfig resolves AWS credentials and region through the default
// chain (environment, shared config, instance role).
func LoadConfig(ctx context.Context, region string) (awssdk.Config, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return awssdk.Config{}, fmt.Errorf("failed to load AWS config: %w", domain.ErrCredentials)
	}
	return cfg, nil
}

// classify maps an SDK error onto the domain sentinels so the
// dashboard can branch on the category without knowing smithy codes.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.ErrorCode() {
	case "Throttling", "ThrottlingException", "RequestLimitExceeded", "TooManyRequestsException":
		return fmt.Errorf("%w: %s", domain.ErrThrottled, apiErr.ErrorMessage())
	case "AccessDenied", "AccessDeniedException", "UnauthorizedOperation":
		return fmt.Errorf("%w: %s", domain.ErrPermission, apiErr.ErrorMessage())
	case "UnrecognizedClientException", "InvalidClientTokenId", "ExpiredToken", "ExpiredTokenException", "MissingAuthenticationToken":
		return fmt.Errorf("%w: %s", domain.ErrCredentials, apiErr.ErrorMessage())
	case "RequestTimeout", "RequestTimeoutException":
		return fmt.Errorf("%w: %s", domain.ErrTimeout, apiErr.ErrorMessage())
	default:
		return err
	}
}
