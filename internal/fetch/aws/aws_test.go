package aws

import (
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/smithy-go"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
)

func TestQueueName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://sqs.eu-central-1.amazonaws.com/123456789012/orders", "orders"},
		{"https://sqs.us-east-1.amazonaws.com/123456789012/orders-dlq.fifo", "orders-dlq.fifo"},
		{"orders", "orders"},
	}
	for _, tt := range tests {
		if got := queueName(tt.url); got != tt.want {
			t.Errorf("queueName(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestStatValue(t *testing.T) {
	p := cwtypes.Datapoint{
		Average: awssdk.Float64(1),
		Sum:     awssdk.Float64(2),
		Maximum: awssdk.Float64(3),
		Minimum: awssdk.Float64(4),
	}

	tests := []struct {
		stat domain.Statistic
		want float64
	}{
		{domain.StatAverage, 1},
		{domain.StatSum, 2},
		{domain.StatMaximum, 3},
		{domain.StatMinimum, 4},
	}
	for _, tt := range tests {
		if got := statValue(p, tt.stat); got != tt.want {
			t.Errorf("statValue(%s) = %g, want %g", tt.stat, got, tt.want)
		}
	}

	if got := statValue(cwtypes.Datapoint{}, domain.StatAverage); got != 0 {
		t.Errorf("nil datapoint field should read as 0, got %g", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"Throttling", domain.ErrThrottled},
		{"ThrottlingException", domain.ErrThrottled},
		{"AccessDeniedException", domain.ErrPermission},
		{"UnrecognizedClientException", domain.ErrCredentials},
		{"ExpiredToken", domain.ErrCredentials},
		{"RequestTimeout", domain.ErrTimeout},
	}

	for _, tt := range tests {
		err := classify(&smithy.GenericAPIError{Code: tt.code, Message: "nope"})
		if !errors.Is(err, tt.want) {
			t.Errorf("classify(%s) = %v, want %v", tt.code, err, tt.want)
		}
	}

	plain := errors.New("boom")
	if classify(plain) != plain {
		t.Error("unrecognized errors must pass through unchanged")
	}
	if classify(nil) != nil {
		t.Error("nil must stay nil")
	}
}
