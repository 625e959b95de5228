package health

import (
	"context"
	"errors"

	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/centralmgmt/portal/internal/infrastructure/cache"
	"github.com/go-redis/redis/v8"
)

// redisHealthChecker wraps the redis client for health checks.
type redisHealthChecker struct{ client *redis.Client }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// cacheHealthChecker reports whether the cache accessor has fallen back to
// its in-memory store.
type cacheHealthChecker struct{ failover *cache.Failover }

func (c *cacheHealthChecker) Name() string { return "cache" }
func (c *cacheHealthChecker) Check(ctx context.Context) error {
	if c.failover.Degraded() {
		return errors.New("cache degraded to in-memory fallback")
	}
	return nil
}

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client *redis.Client) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}

// NewCacheHealthChecker creates a health checker for the cache accessor.
func NewCacheHealthChecker(failover *cache.Failover) ports.HealthChecker {
	return &cacheHealthChecker{failover: failover}
}
