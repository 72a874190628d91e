package providers

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"nathanbeddoewebdev/cloudpulse/internal/util"
)

// ErrNotRegistered is returned by Get for a service id with no
// descriptor. Callers recover by picking a different service.
var ErrNotRegistered = errors.New("provider not registered")

var (
	mu       sync.RWMutex
	registry = map[string]*Descriptor{}
)

// Register adds or replaces a descriptor under its service id. Last
// write wins; re-registering is not an error so startup wiring stays
// idempotent.
func Register(d *Descriptor) {
	if d == nil {
		panic("providers: nil descriptor")
	}
	id := util.NormalizeKey(d.ServiceID)
	if id == "" {
		panic("providers: empty service id")
	}

	mu.Lock()
	defer mu.Unlock()
	registry[id] = d
}

// Get returns the descriptor for a service id. The only error it
// produces wraps ErrNotRegistered, naming the service.
func Get(serviceID string) (*Descriptor, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := registry[util.NormalizeKey(serviceID)]
	if !ok {
		return nil, fmt.Errorf("providers: service %q: %w", serviceID, ErrNotRegistered)
	}
	return d, nil
}

// ListSupported returns the registered service ids, sorted for stable
// picker ordering.
func ListSupported() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reset clears the registry. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]*Descriptor{}
}

// RegisterDefaults wires every built-in service descriptor.
func RegisterDefaults() {
	Register(RDS())
	Register(SQS())
	Register(Hetzner())
}
