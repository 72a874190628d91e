// Package auth stores provider API tokens in the OS keychain. AWS
// credentials resolve through the SDK's own chain; only token-based
// services (Hetzner) go through this store.
package auth

import (
	"errors"

	"nathanbeddoewebdev/cloudpulse/internal/util"
)

const ServiceName = "cloudpulse"

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(service string, token string) error
	GetToken(service string) (string, error)
	DeleteToken(service string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeService normalizes a service name for consistent key lookup.
func NormalizeService(service string) string {
	return util.NormalizeKey(service)
}
