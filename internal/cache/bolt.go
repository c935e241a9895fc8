package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"

	"github.com/swcstudio/domainscan/internal/models"
)

const bucketScanCache = "scan_cache"

// boltEntry is the JSON value stored per hostname. StoredAt and TTL travel
// with the entry because bbolt has no native expiry.
type boltEntry struct {
	Result     *models.ScanResult `json:"result"`
	StoredAt   time.Time          `json:"stored_at"`
	TTLSeconds int64              `json:"ttl_seconds"`
}

// Bolt is a file-backed cache that survives process restarts. Staleness is
// still checked lazily on read, same as the in-memory store.
type Bolt struct {
	db  *bbolt.DB
	ttl time.Duration
	now func() time.Time
}

// NewBolt opens (or creates) a bbolt database at path and initializes the
// cache bucket
func NewBolt(path string, ttl time.Duration) (*Bolt, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketScanCache))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Bolt{db: db, ttl: ttl, now: time.Now}, nil
}

// Close closes the underlying database
func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) Get(_ context.Context, hostname string) (*models.ScanResult, bool) {
	var entry boltEntry
	found := false

	b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketScanCache)).Get([]byte(hostname))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil
		}
		found = true
		return nil
	})

	if !found {
		return nil, false
	}
	if b.stale(entry) {
		// Lazy eviction of the stale entry.
		b.db.Update(func(tx *bbolt.Tx) error {
			return tx.Bucket([]byte(bucketScanCache)).Delete([]byte(hostname))
		})
		return nil, false
	}
	return entry.Result, true
}

func (b *Bolt) Set(_ context.Context, hostname string, result *models.ScanResult, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = b.ttl
	}
	data, err := json.Marshal(boltEntry{
		Result:     result,
		StoredAt:   b.now(),
		TTLSeconds: int64(ttl / time.Second),
	})
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketScanCache)).Put([]byte(hostname), data)
	})
}

func (b *Bolt) Has(ctx context.Context, hostname string) bool {
	_, ok := b.Get(ctx, hostname)
	return ok
}

func (b *Bolt) Delete(_ context.Context, hostname string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketScanCache)).Delete([]byte(hostname))
	})
}

func (b *Bolt) Clear(_ context.Context) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketScanCache)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(bucketScanCache))
		return err
	})
}

func (b *Bolt) List(_ context.Context) ([]Summary, error) {
	var summaries []Summary

	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketScanCache)).ForEach(func(k, v []byte) error {
			var entry boltEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return nil
			}
			if b.stale(entry) {
				return nil
			}
			summaries = append(summaries, Summary{
				Hostname:  string(k),
				ScanID:    entry.Result.ScanID,
				Timestamp: entry.Result.Timestamp,
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (b *Bolt) stale(entry boltEntry) bool {
	ttl := time.Duration(entry.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = b.ttl
	}
	return b.now().Sub(entry.StoredAt) >= ttl
}
