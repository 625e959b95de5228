package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// Failover is the cache accessor used on the request path. It prefers a
// primary shared cache and degrades to a process-local memory cache the
// moment the primary returns any error; the degradation is one-way for the
// lifetime of the process. Callers never see a cache fault: a failed read is
// a miss, a failed write is a no-op against the fallback.
type Failover struct {
	primary  ports.Cache
	fallback *MemoryCache
	degraded atomic.Bool
	logger   *logrus.Logger
}

// NewFailover creates a failover cache accessor. A nil primary starts the
// accessor in memory-only mode.
func NewFailover(primary ports.Cache, logger *logrus.Logger) *Failover {
	f := &Failover{primary: primary, fallback: NewMemoryCache(), logger: logger}
	if primary == nil {
		f.degraded.Store(true)
	}
	return f
}

// Degraded reports whether the accessor has switched to the memory fallback.
func (f *Failover) Degraded() bool {
	return f.degraded.Load()
}

func (f *Failover) degrade(op string, err error) {
	if f.degraded.CompareAndSwap(false, true) && f.logger != nil {
		f.logger.WithFields(logrus.Fields{"op": op}).WithError(err).
			Warn("primary cache unavailable, switching to in-memory cache")
	}
}

func (f *Failover) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !f.degraded.Load() {
		val, ok, err := f.primary.Get(ctx, key)
		if err == nil {
			return val, ok, nil
		}
		f.degrade("get", err)
	}
	return f.fallback.Get(ctx, key)
}

func (f *Failover) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !f.degraded.Load() {
		if err := f.primary.Set(ctx, key, value, ttl); err == nil {
			return nil
		} else {
			f.degrade("set", err)
		}
	}
	return f.fallback.Set(ctx, key, value, ttl)
}

func (f *Failover) Delete(ctx context.Context, key string) error {
	if !f.degraded.Load() {
		if err := f.primary.Delete(ctx, key); err == nil {
			return nil
		} else {
			f.degrade("delete", err)
		}
	}
	return f.fallback.Delete(ctx, key)
}

func (f *Failover) DeletePattern(ctx context.Context, pattern string) error {
	if !f.degraded.Load() {
		if err := f.primary.DeletePattern(ctx, pattern); err == nil {
			return nil
		} else {
			f.degrade("delete_pattern", err)
		}
	}
	return f.fallback.DeletePattern(ctx, pattern)
}

var _ ports.Cache = (*Failover)(nil)
var _ ports.Cache = (*MemoryCache)(nil)
