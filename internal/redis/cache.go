package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RollupCache caches computed statistics rollups in Redis, keyed by the
// ledger's data version. A version bump naturally orphans stale entries, so
// no explicit invalidation is needed; the TTL reclaims old versions.
type RollupCache struct {
	client *redis.Client
}

// NewRollupCache creates a new RollupCache.
func NewRollupCache(client *redis.Client) *RollupCache {
	return &RollupCache{client: client}
}

// RollupCacheTTL bounds how long an orphaned version lingers.
const RollupCacheTTL = 15 * time.Minute

const rollupKeyPrefix = "rollup:"

func rollupKey(name string, version uint64) string {
	return fmt.Sprintf("%s%s:v%d", rollupKeyPrefix, name, version)
}

// Get retrieves a cached rollup into dest. The second return is false on a
// cache miss.
func (c *RollupCache) Get(ctx context.Context, name string, version uint64, dest any) (bool, error) {
	data, err := c.client.Get(ctx, rollupKey(name, version)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil // Cache miss
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores a computed rollup under the given name and version.
func (c *RollupCache) Set(ctx context.Context, name string, version uint64, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, rollupKey(name, version), data, RollupCacheTTL).Err()
}
