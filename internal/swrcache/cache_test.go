package swrcache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"nathanbeddoewebdev/cloudpulse/internal/domain"
)

func instanceList(ids ...string) []domain.Instance {
	list := make([]domain.Instance, len(ids))
	for i, id := range ids {
		list[i] = domain.Instance{ID: id, Name: id}
	}
	return list
}

// countingFetch returns a FetchFunc that records how often it was called.
func countingFetch(list []domain.Instance) (FetchFunc, *int) {
	calls := new(int)
	return func(context.Context) ([]domain.Instance, error) {
		*calls++
		return list, nil
	}, calls
}

func seed(t *testing.T, c *Cache, service string, list []domain.Instance, fetchedAt time.Time) {
	t.Helper()
	err := c.write(listing{Service: service, FetchedAt: fetchedAt, Instances: list})
	if err != nil {
		t.Fatalf("seeding listing failed: %v", err)
	}
}

func TestInstances_MissFetches(t *testing.T) {
	c := New(t.TempDir(), time.Minute, time.Hour)
	fetch, calls := countingFetch(instanceList("orders"))

	got, err := c.Instances(context.Background(), "sqs", fetch)
	if err != nil {
		t.Fatalf("Instances failed: %v", err)
	}
	if *calls != 1 {
		t.Errorf("expected 1 fetch on a miss, got %d", *calls)
	}
	if diff := cmp.Diff(instanceList("orders"), got); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestInstances_FreshListingSkipsFetch(t *testing.T) {
	c := New(t.TempDir(), time.Minute, time.Hour)
	seed(t, c, "rds", instanceList("prod-db"), time.Now())
	fetch, calls := countingFetch(instanceList("fresh-from-api"))

	got, err := c.Instances(context.Background(), "rds", fetch)
	if err != nil {
		t.Fatalf("Instances failed: %v", err)
	}
	if *calls != 0 {
		t.Errorf("a fresh listing must not refetch, got %d calls", *calls)
	}
	if diff := cmp.Diff(instanceList("prod-db"), got); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestInstances_StaleServedThenRevalidated(t *testing.T) {
	c := New(t.TempDir(), time.Minute, time.Hour)
	seed(t, c, "rds", instanceList("old-db"), time.Now().Add(-10*time.Minute))
	fetch, calls := countingFetch(instanceList("new-db"))

	got, err := c.Instances(context.Background(), "rds", fetch)
	if err != nil {
		t.Fatalf("Instances failed: %v", err)
	}
	// The stale listing is returned immediately.
	if diff := cmp.Diff(instanceList("old-db"), got); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}

	// The background refetch replaces the file.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if l, ok := c.read("rds"); ok && len(l.Instances) > 0 && l.Instances[0].ID == "new-db" {
			if *calls != 1 {
				t.Errorf("expected exactly 1 background fetch, got %d", *calls)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("stale listing was never revalidated")
}

func TestInstances_ExpiredFetchesSync(t *testing.T) {
	c := New(t.TempDir(), time.Minute, time.Hour)
	seed(t, c, "rds", instanceList("ancient-db"), time.Now().Add(-2*time.Hour))
	fetch, calls := countingFetch(instanceList("current-db"))

	got, err := c.Instances(context.Background(), "rds", fetch)
	if err != nil {
		t.Fatalf("Instances failed: %v", err)
	}
	if *calls != 1 {
		t.Errorf("expected a synchronous fetch past keepFor, got %d calls", *calls)
	}
	if diff := cmp.Diff(instanceList("current-db"), got); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestRefresh_BypassesFreshListing(t *testing.T) {
	c := New(t.TempDir(), time.Minute, time.Hour)
	fetch, calls := countingFetch(instanceList("live"))

	// Populate, then confirm the read path serves the stored listing.
	if _, err := c.Refresh(context.Background(), "sqs", fetch); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if _, err := c.Instances(context.Background(), "sqs", fetch); err != nil {
		t.Fatalf("Instances failed: %v", err)
	}
	if *calls != 1 {
		t.Fatalf("expected the fresh listing served without a fetch, got %d calls", *calls)
	}

	// An explicit refresh must reach the provider even while fresh.
	got, err := c.Refresh(context.Background(), "sqs", fetch)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if *calls != 2 {
		t.Errorf("expected Refresh to fetch unconditionally, got %d calls", *calls)
	}
	if diff := cmp.Diff(instanceList("live"), got); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestRefresh_ErrorLeavesStoredListing(t *testing.T) {
	c := New(t.TempDir(), time.Minute, time.Hour)
	seed(t, c, "sqs", instanceList("kept"), time.Now())

	_, err := c.Refresh(context.Background(), "sqs", func(context.Context) ([]domain.Instance, error) {
		return nil, os.ErrDeadlineExceeded
	})
	if err == nil {
		t.Fatal("expected the fetch error back")
	}

	if l, ok := c.read("sqs"); !ok || len(l.Instances) != 1 || l.Instances[0].ID != "kept" {
		t.Error("a failed refresh must not clobber the stored listing")
	}
}

func TestForget(t *testing.T) {
	c := New(t.TempDir(), time.Minute, time.Hour)
	seed(t, c, "hetzner", instanceList("web-1"), time.Now())

	if err := c.Forget("hetzner"); err != nil {
		t.Fatalf("Forget failed: %v", err)
	}
	if _, ok := c.read("hetzner"); ok {
		t.Error("listing still present after Forget")
	}
	// Forgetting a missing entry is not an error.
	if err := c.Forget("hetzner"); err != nil {
		t.Errorf("second Forget failed: %v", err)
	}
}

func TestClear(t *testing.T) {
	c := New(t.TempDir(), time.Minute, time.Hour)
	seed(t, c, "rds", instanceList("a"), time.Now())
	seed(t, c, "sqs", instanceList("b"), time.Now())

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	for _, svc := range []string{"rds", "sqs"} {
		if _, ok := c.read(svc); ok {
			t.Errorf("listing for %q survived Clear", svc)
		}
	}
}

func TestNilCachePassesThrough(t *testing.T) {
	var c *Cache
	fetch, calls := countingFetch(instanceList("direct"))

	got, err := c.Instances(context.Background(), "rds", fetch)
	if err != nil {
		t.Fatalf("Instances failed: %v", err)
	}
	if *calls != 1 {
		t.Errorf("nil cache must call the fetch, got %d calls", *calls)
	}
	if diff := cmp.Diff(instanceList("direct"), got); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
	if err := c.Forget("rds"); err != nil {
		t.Errorf("nil Forget failed: %v", err)
	}
}

func TestNew_ClampsDurations(t *testing.T) {
	c := New(t.TempDir(), 0, 0)
	if c.freshFor != DefaultFreshFor || c.keepFor != DefaultKeepFor {
		t.Errorf("expected defaults, got fresh=%v keep=%v", c.freshFor, c.keepFor)
	}

	c = New(t.TempDir(), 10*time.Minute, time.Minute)
	if c.keepFor != 10*time.Minute {
		t.Errorf("keepFor must not undercut freshFor, got %v", c.keepFor)
	}
}
