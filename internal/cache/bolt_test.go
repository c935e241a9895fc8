package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/swcstudio/domainscan/internal/models"
)

func newTestBolt(t *testing.T, ttl time.Duration) (*Bolt, *time.Time) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	b, err := NewBolt(path, ttl)
	if err != nil {
		t.Fatalf("NewBolt: %v", err)
	}
	t.Cleanup(func() { b.Close() })

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return current }
	return b, &current
}

func TestBoltRoundTrip(t *testing.T) {
	ctx := context.Background()
	b, _ := newTestBolt(t, time.Minute)

	result := models.NewScanResult("example.com", models.DepthComprehensive)
	result.Analysis.RiskLevel = models.RiskMedium

	if err := b.Set(ctx, "example.com", result, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := b.Get(ctx, "example.com")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.ScanID != result.ScanID || got.Analysis.RiskLevel != models.RiskMedium {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestBoltLazyEviction(t *testing.T) {
	ctx := context.Background()
	b, current := newTestBolt(t, time.Minute)

	b.Set(ctx, "example.com", models.NewScanResult("example.com", models.DepthBasic), 0)

	*current = current.Add(2 * time.Minute)
	if _, ok := b.Get(ctx, "example.com"); ok {
		t.Fatal("expected stale miss")
	}

	// The stale entry must be gone even when read again with a rewound clock.
	*current = current.Add(-2 * time.Minute)
	if _, ok := b.Get(ctx, "example.com"); ok {
		t.Error("stale entry was not evicted on read")
	}
}

func TestBoltClearAndList(t *testing.T) {
	ctx := context.Background()
	b, _ := newTestBolt(t, time.Minute)

	b.Set(ctx, "a.example.com", models.NewScanResult("a.example.com", models.DepthBasic), 0)
	b.Set(ctx, "b.example.com", models.NewScanResult("b.example.com", models.DepthBasic), 0)

	list, err := b.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List = %d entries, want 2", len(list))
	}

	if err := b.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	list, err = b.List(ctx)
	if err != nil {
		t.Fatalf("List after Clear: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List after Clear = %d entries, want 0", len(list))
	}
}
