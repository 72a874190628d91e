package fetch

import (
	"context"
	"fmt"

	"nathanbeddoewebdev/cloudpulse/internal/auth"
	"nathanbeddoewebdev/cloudpulse/internal/config"
	awsfetch "nathanbeddoewebdev/cloudpulse/internal/fetch/aws"
	hetznerfetch "nathanbeddoewebdev/cloudpulse/internal/fetch/hetzner"
)

// NewClient builds the fetch client for a registered service. AWS
// services resolve credentials through the SDK chain; Hetzner reads its
// token from the auth store.
func NewClient(ctx context.Context, serviceID string, cfg *config.Config, store auth.Store) (Client, error) {
	region := ""
	if cfg != nil {
		region = cfg.AWSRegion
	}

	switch serviceID {
	case "rds":
		return awsfetch.NewRDSClient(ctx, region)
	case "sqs":
		return awsfetch.NewSQSClient(ctx, region)
	case "hetzner":
		token, err := store.GetToken("hetzner")
		if err != nil {
			return nil, fmt.Errorf("no Hetzner token stored (run `cloudpulse auth login hetzner`): %w", err)
		}
		return hetznerfetch.New(token)
	default:
		return nil, fmt.Errorf("fetch: no client for service %q", serviceID)
	}
}
