// Package swrcache keeps the last instance listing per service on disk
// and serves it stale-while-revalidate: a fresh listing is returned
// as-is, a stale one is returned immediately while a background
// refetch replaces it, and an expired one forces a synchronous fetch.
// The dashboard reads through it so a reopened instance list paints
// from the last known state instead of a spinner.
package swrcache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/util"
)

const (
	// DefaultFreshFor is how long a stored listing is served without
	// refetching when no interval is configured.
	DefaultFreshFor = 5 * time.Minute

	// DefaultKeepFor is how long a stale listing may still be shown
	// while a background refetch runs.
	DefaultKeepFor = time.Hour

	// revalidateTimeout bounds the background refetch of a stale
	// listing, which outlives the caller's context.
	revalidateTimeout = 30 * time.Second
)

// FetchFunc lists the live instances for a service.
type FetchFunc func(context.Context) ([]domain.Instance, error)

// Cache stores one JSON listing file per service under dir. All
// methods are nil-safe; a nil *Cache passes every read through to the
// fetch function.
type Cache struct {
	dir      string
	freshFor time.Duration
	keepFor  time.Duration
}

// listing is the on-disk record for one service.
type listing struct {
	Service   string            `json:"service"`
	FetchedAt time.Time         `json:"fetched_at"`
	Instances []domain.Instance `json:"instances"`
}

// New returns a cache rooted at dir. Non-positive durations fall back
// to the defaults, and keepFor is raised to freshFor when it would
// otherwise expire listings that are still fresh.
func New(dir string, freshFor, keepFor time.Duration) *Cache {
	if freshFor <= 0 {
		freshFor = DefaultFreshFor
	}
	if keepFor <= 0 {
		keepFor = DefaultKeepFor
	}
	if keepFor < freshFor {
		keepFor = freshFor
	}
	return &Cache{dir: dir, freshFor: freshFor, keepFor: keepFor}
}

// Default returns a cache under the OS user cache dir.
func Default(freshFor, keepFor time.Duration) *Cache {
	return New(defaultDir(), freshFor, keepFor)
}

// Instances returns the listing for a service, fetching when the
// stored one is missing or too old. A stale listing is returned
// immediately and replaced in the background.
func (c *Cache) Instances(ctx context.Context, service string, fetch FetchFunc) ([]domain.Instance, error) {
	if c == nil || c.dir == "" {
		return fetch(ctx)
	}

	l, ok := c.read(service)
	if !ok {
		return c.Refresh(ctx, service, fetch)
	}

	age := time.Since(l.FetchedAt)
	switch {
	case age < 0 || age > c.keepFor:
		return c.Refresh(ctx, service, fetch)
	case age <= c.freshFor:
		return l.Instances, nil
	default:
		go c.revalidate(service, fetch)
		return l.Instances, nil
	}
}

// Refresh fetches unconditionally and replaces the stored listing.
// The dashboard's manual refresh key routes here, so an explicit
// refresh always reaches the provider even while the stored listing
// is still fresh.
func (c *Cache) Refresh(ctx context.Context, service string, fetch FetchFunc) ([]domain.Instance, error) {
	list, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if c != nil && c.dir != "" {
		_ = c.write(listing{
			Service:   util.NormalizeKey(service),
			FetchedAt: time.Now(),
			Instances: list,
		})
	}
	return list, nil
}

// Forget drops the stored listing for one service.
func (c *Cache) Forget(service string) error {
	if c == nil || c.dir == "" {
		return nil
	}
	err := os.Remove(c.path(service))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes every stored listing.
func (c *Cache) Clear() error {
	if c == nil || c.dir == "" {
		return nil
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(c.dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) revalidate(service string, fetch FetchFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), revalidateTimeout)
	defer cancel()
	_, _ = c.Refresh(ctx, service, fetch)
}

func (c *Cache) read(service string) (listing, bool) {
	data, err := os.ReadFile(c.path(service))
	if err != nil {
		return listing{}, false
	}

	var l listing
	if err := json.Unmarshal(data, &l); err != nil || l.FetchedAt.IsZero() {
		// A corrupt file is treated as a miss and overwritten by the
		// next fetch.
		return listing{}, false
	}
	return l, true
}

func (c *Cache) write(l listing) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}

	payload, err := json.Marshal(l)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write never leaves a truncated
	// listing behind.
	tmp, err := os.CreateTemp(c.dir, fileStem(l.Service)+".tmp-*")
	if err != nil {
		return err
	}
	name := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	return os.Rename(name, c.path(l.Service))
}

func (c *Cache) path(service string) string {
	return filepath.Join(c.dir, fileStem(service)+".json")
}

// fileStem maps a service id to a filesystem-safe file name.
func fileStem(service string) string {
	service = util.NormalizeKey(service)
	if service == "" {
		return "service"
	}

	var b strings.Builder
	b.Grow(len(service))
	for i := 0; i < len(service); i++ {
		ch := service[i]
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

func defaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, "cloudpulse", "instances")
}
