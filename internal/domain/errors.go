package domain

import "errors"

// Sentinel errors for cross-provider fetch error classification.
// Clients wrap these so the dashboard can branch on error categories
// uniformly without importing provider-specific SDKs.
//
//	return fmt.Errorf("failed to list queues: %w", domain.ErrThrottled)
var (
	// ErrCredentials indicates missing, expired, or unparseable
	// credentials (no usable identity at all).
	ErrCredentials = errors.New("credentials unavailable")

	// ErrPermission indicates the identity was accepted but is not
	// allowed to perform the request.
	ErrPermission = errors.New("permission denied")

	// ErrThrottled indicates the provider rate limited the request.
	ErrThrottled = errors.New("rate limited")

	// ErrTimeout indicates the request exceeded its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
)
