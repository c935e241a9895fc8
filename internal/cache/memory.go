package cache

import (
	"context"
	"sync"
	"time"

	"github.com/swcstudio/domainscan/internal/models"
)

type memoryEntry struct {
	result   *models.ScanResult
	storedAt time.Time
	ttl      time.Duration
}

// Memory is the baseline in-process cache. Eviction is lazy: staleness is
// checked on read, there is no background sweep. Cardinality is bounded by
// the set of hostnames scanned within the TTL window.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory creates an in-memory store with the given default TTL.
// A zero ttl falls back to DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, hostname string) (*models.ScanResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[hostname]
	if !ok {
		return nil, false
	}
	if m.now().Sub(entry.storedAt) >= entry.ttl {
		delete(m.entries, hostname)
		return nil, false
	}
	return entry.result, true
}

func (m *Memory) Set(_ context.Context, hostname string, result *models.ScanResult, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.ttl
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[hostname] = memoryEntry{result: result, storedAt: m.now(), ttl: ttl}
	return nil
}

func (m *Memory) Has(ctx context.Context, hostname string) bool {
	_, ok := m.Get(ctx, hostname)
	return ok
}

func (m *Memory) Delete(_ context.Context, hostname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, hostname)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]memoryEntry)
	return nil
}

func (m *Memory) List(_ context.Context) ([]Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	summaries := make([]Summary, 0, len(m.entries))
	for hostname, entry := range m.entries {
		if now.Sub(entry.storedAt) >= entry.ttl {
			delete(m.entries, hostname)
			continue
		}
		summaries = append(summaries, Summary{
			Hostname:  hostname,
			ScanID:    entry.result.ScanID,
			Timestamp: entry.result.Timestamp,
		})
	}
	return summaries, nil
}
