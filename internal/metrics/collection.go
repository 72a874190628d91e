package metrics

import (
	"sync"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
)

// Collection holds the series for the currently viewed instance. Each
// refresh replaces the contents wholesale so readers never observe a
// half-updated batch.
type Collection struct {
	mu     sync.RWMutex
	series []domain.Series
}

// Replace swaps in a freshly normalized batch.
func (c *Collection) Replace(series []domain.Series) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.series = series
}

// All returns the current batch. The slice must be treated as
// read-only; it is shared with the collection until the next Replace.
func (c *Collection) All() []domain.Series {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.series
}

// At returns the series at a grid position.
func (c *Collection) At(i int) (domain.Series, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i < 0 || i >= len(c.series) {
		return domain.Series{}, false
	}
	return c.series[i], true
}

// Len returns the number of series in the current batch.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.series)
}

// DisplayNames returns the display names in batch order, for list
// rendering.
func (c *Collection) DisplayNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.series))
	for i, s := range c.series {
		names[i] = s.DisplayName
	}
	return names
}
