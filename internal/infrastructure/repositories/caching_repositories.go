package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/centralmgmt/portal/internal/core/domain/inventory"
	"github.com/centralmgmt/portal/internal/core/domain/order"
	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Cache key layout:
//
//	inventory:<page>:<limit>:<category|"all">
//	inventory:item:<id>
//	orders:<page>:<limit>:<status|"all">
//
// Mutations invalidate the whole entity prefix ("inventory:*", "orders:*").

// Utility helpers. Cache faults are swallowed: a failed read is a miss and
// a failed write is a no-op, so the stores never fail on cache trouble.
func cacheSetSilently(c ports.Cache, ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, b, ttl)
}

func cacheGet[T any](c ports.Cache, ctx context.Context, key string) (*T, bool) {
	if c == nil {
		return nil, false
	}
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, false
	}
	return &v, true
}

func invalidatePattern(c ports.Cache, ctx context.Context, pattern string) {
	if c == nil {
		return
	}
	_ = c.DeletePattern(ctx, pattern)
}

// cachedPage is the value stored under a list key.
type cachedPage[T any] struct {
	Items []*T `json:"items"`
	Total int  `json:"total"`
}

// loadPageWithSingleflight coalesces concurrent misses for the same list key
// so a cold page is derived from the backing store only once.
func loadPageWithSingleflight[T any](cache ports.Cache, ctx context.Context, key string, ttl time.Duration, loader func() ([]*T, int, error)) ([]*T, int, error) {
	if v, ok := cacheGet[cachedPage[T]](cache, ctx, key); ok {
		return v.Items, v.Total, nil
	}
	res, err, _ := sf.Do(key, func() (any, error) {
		if v, ok := cacheGet[cachedPage[T]](cache, ctx, key); ok {
			return *v, nil
		}
		items, total, err := loader()
		if err != nil {
			return nil, err
		}
		page := cachedPage[T]{Items: items, Total: total}
		cacheSetSilently(cache, ctx, key, page, ttl)
		return page, nil
	})
	if err != nil {
		return nil, 0, err
	}
	page, ok := res.(cachedPage[T])
	if !ok {
		return nil, 0, fmt.Errorf("unexpected type from singleflight result")
	}
	return page.Items, page.Total, nil
}

func listKey(prefix string, page, limit int, filter string) string {
	if filter == "" {
		filter = "all"
	}
	return fmt.Sprintf("%s:%d:%d:%s", prefix, page, limit, filter)
}

// CachingInventoryRepository decorates an InventoryRepository with
// read-through caching over the shared cache accessor.
type CachingInventoryRepository struct {
	inner ports.InventoryRepository
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingInventoryRepository(inner ports.InventoryRepository, cache ports.Cache, ttl time.Duration) ports.InventoryRepository {
	return &CachingInventoryRepository{inner: inner, cache: cache, ttl: ttl}
}

func (c *CachingInventoryRepository) List(ctx context.Context, page, limit int, category string) ([]*inventory.Item, int, error) {
	key := listKey("inventory", page, limit, category)
	return loadPageWithSingleflight(c.cache, ctx, key, c.ttl, func() ([]*inventory.Item, int, error) {
		return c.inner.List(ctx, page, limit, category)
	})
}

func (c *CachingInventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	key := "inventory:item:" + id.String()
	if v, ok := cacheGet[inventory.Item](c.cache, ctx, key); ok {
		return v, nil
	}
	it, err := c.inner.GetByID(ctx, id)
	if err == nil {
		cacheSetSilently(c.cache, ctx, key, it, c.ttl)
	}
	return it, err
}

func (c *CachingInventoryRepository) Create(ctx context.Context, item *inventory.Item) error {
	if err := c.inner.Create(ctx, item); err != nil {
		return err
	}
	invalidatePattern(c.cache, ctx, "inventory:*")
	return nil
}

func (c *CachingInventoryRepository) Update(ctx context.Context, id uuid.UUID, req *inventory.UpdateItemRequest) (*inventory.Item, error) {
	it, err := c.inner.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	invalidatePattern(c.cache, ctx, "inventory:*")
	return it, nil
}

// CachingOrderRepository caches list pages only; individual orders are
// always read from the backing store.
type CachingOrderRepository struct {
	inner ports.OrderRepository
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingOrderRepository(inner ports.OrderRepository, cache ports.Cache, ttl time.Duration) ports.OrderRepository {
	return &CachingOrderRepository{inner: inner, cache: cache, ttl: ttl}
}

func (c *CachingOrderRepository) List(ctx context.Context, page, limit int, status string) ([]*order.Order, int, error) {
	key := listKey("orders", page, limit, status)
	return loadPageWithSingleflight(c.cache, ctx, key, c.ttl, func() ([]*order.Order, int, error) {
		return c.inner.List(ctx, page, limit, status)
	})
}

func (c *CachingOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *CachingOrderRepository) Create(ctx context.Context, req *order.CreateOrderRequest) (*order.Order, error) {
	o, err := c.inner.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	invalidatePattern(c.cache, ctx, "orders:*")
	return o, nil
}

func (c *CachingOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, notes string) (*order.Order, error) {
	o, err := c.inner.UpdateStatus(ctx, id, status, notes)
	if err != nil {
		return nil, err
	}
	invalidatePattern(c.cache, ctx, "orders:*")
	return o, nil
}

// Simple validation to ensure decorators implement interfaces at compile time
var _ ports.InventoryRepository = (*CachingInventoryRepository)(nil)
var _ ports.OrderRepository = (*CachingOrderRepository)(nil)

// singleflight group for coalescing cache-miss loads in-process
var sf singleflight.Group
