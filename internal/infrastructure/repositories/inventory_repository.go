package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/centralmgmt/portal/internal/core/domain/inventory"
	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/google/uuid"
)

// InventoryRepository is the in-memory inventory store. A single RWMutex
// guards every read-modify-write so creates and updates are atomic even
// under concurrent requests.
type InventoryRepository struct {
	mu    sync.RWMutex
	items []*inventory.Item
}

func NewInventoryRepository(seed ...*inventory.Item) *InventoryRepository {
	return &InventoryRepository{items: append([]*inventory.Item{}, seed...)}
}

func (r *InventoryRepository) List(ctx context.Context, page, limit int, category string) ([]*inventory.Item, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := r.items
	if category != "" {
		filtered = make([]*inventory.Item, 0)
		for _, it := range r.items {
			if it.Category == category {
				filtered = append(filtered, it)
			}
		}
	}

	return pageSlice(filtered, page, limit), len(filtered), nil
}

func (r *InventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, inventory.ErrNotFound
}

func (r *InventoryRepository) Create(ctx context.Context, item *inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = uuid.New()
	item.LastUpdated = time.Now().UTC()
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *InventoryRepository) Update(ctx context.Context, id uuid.UUID, req *inventory.UpdateItemRequest) (*inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.ID != id {
			continue
		}
		if req.Name != nil {
			it.Name = *req.Name
		}
		if req.SKU != nil {
			it.SKU = *req.SKU
		}
		if req.Quantity != nil {
			it.Quantity = *req.Quantity
		}
		if req.Unit != nil {
			it.Unit = *req.Unit
		}
		if req.Category != nil {
			it.Category = *req.Category
		}
		if req.Location != nil {
			it.Location = *req.Location
		}
		if req.MinQuantity != nil {
			it.MinQuantity = *req.MinQuantity
		}
		if req.MaxQuantity != nil {
			it.MaxQuantity = *req.MaxQuantity
		}
		if req.Supplier != nil {
			it.Supplier = *req.Supplier
		}
		it.LastUpdated = time.Now().UTC()
		cp := *it
		return &cp, nil
	}
	return nil, inventory.ErrNotFound
}

// pageSlice returns the [(page-1)*limit, page*limit) window of items.
// Out-of-range pages yield an empty slice, not an error.
func pageSlice[T any](items []*T, page, limit int) []*T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []*T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]*T, 0, end-start)
	for _, it := range items[start:end] {
		cp := *it
		out = append(out, &cp)
	}
	return out
}

var _ ports.InventoryRepository = (*InventoryRepository)(nil)
