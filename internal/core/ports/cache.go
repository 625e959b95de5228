package ports

import (
	"context"
	"time"
)

// Cache defines the key-value contract used as a read-through accelerator.
// Implementations should degrade gracefully (returning an error without
// crashing callers) so the request path can fall back to the backing store.
type Cache interface {
	// Get returns the raw bytes for key. ok=false if not found or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for key with TTL, overwriting any prior entry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the key; absence is not an error.
	Delete(ctx context.Context, key string) error
	// DeletePattern removes every key matching a glob pattern with a single
	// trailing '*' wildcard, e.g. "inventory:*".
	DeletePattern(ctx context.Context, pattern string) error
}
