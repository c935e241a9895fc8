package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/swcstudio/domainscan/internal/models"
)

const redisKeyPrefix = "domainscan:"

// Redis is a cache backend for multi-instance deployments. Freshness is
// delegated to the server by storing entries with a native expiry, so Get
// needs no storedAt bookkeeping of its own.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps an existing client with the given default TTL
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

func redisKey(hostname string) string {
	return redisKeyPrefix + hostname
}

func (r *Redis) Get(ctx context.Context, hostname string) (*models.ScanResult, bool) {
	data, err := r.client.Get(ctx, redisKey(hostname)).Result()
	if err != nil {
		// redis.Nil is an ordinary miss; any other failure degrades to one.
		return nil, false
	}
	var result models.ScanResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (r *Redis) Set(ctx context.Context, hostname string, result *models.ScanResult, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.ttl
	}
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisKey(hostname), data, ttl).Err()
}

func (r *Redis) Has(ctx context.Context, hostname string) bool {
	n, err := r.client.Exists(ctx, redisKey(hostname)).Result()
	return err == nil && n > 0
}

func (r *Redis) Delete(ctx context.Context, hostname string) error {
	return r.client.Del(ctx, redisKey(hostname)).Err()
}

func (r *Redis) Clear(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, redisKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *Redis) List(ctx context.Context) ([]Summary, error) {
	keys, err := r.client.Keys(ctx, redisKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(keys))
	for _, key := range keys {
		data, err := r.client.Get(ctx, key).Result()
		if err != nil {
			// Expired between Keys and Get.
			continue
		}
		var result models.ScanResult
		if err := json.Unmarshal([]byte(data), &result); err != nil {
			continue
		}
		summaries = append(summaries, Summary{
			Hostname:  result.Hostname,
			ScanID:    result.ScanID,
			Timestamp: result.Timestamp,
		})
	}
	return summaries, nil
}
