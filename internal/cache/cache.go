// Package cache maps normalized hostnames to previously computed scan
// results with a time-to-live. The Store interface keeps the pipeline
// independent of the backing implementation so a distributed store can be
// substituted without touching scan logic.
package cache

import (
	"context"
	"time"

	"github.com/swcstudio/domainscan/internal/models"
)

// DefaultTTL is the freshness window applied when Set is called with ttl 0
const DefaultTTL = 5 * time.Minute

// Summary is the lightweight listing view of a cached entry
type Summary struct {
	Hostname  string    `json:"hostname"`
	ScanID    string    `json:"scan_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Store is the result-cache capability consumed by the engine.
//
// Get and Has apply the same freshness check: an entry older than its TTL
// behaves as a miss. Stored results are treated as immutable; Set replaces
// the prior entry for a hostname unconditionally.
type Store interface {
	Get(ctx context.Context, hostname string) (*models.ScanResult, bool)
	Set(ctx context.Context, hostname string, result *models.ScanResult, ttl time.Duration) error
	Has(ctx context.Context, hostname string) bool
	Delete(ctx context.Context, hostname string) error
	Clear(ctx context.Context) error
	List(ctx context.Context) ([]Summary, error)
}
