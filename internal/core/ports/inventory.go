package ports

import (
	"context"

	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/inventory"
	"github.com/google/uuid"
)

// InventoryRepository defines the interface for inventory storage.
// List applies an optional category equality filter, then slices the
// filtered collection; it returns the page and the filtered total.
type InventoryRepository interface {
	List(ctx context.Context, page, limit int, category string) ([]*inventory.Item, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error)
	Create(ctx context.Context, item *inventory.Item) error
	Update(ctx context.Context, id uuid.UUID, req *inventory.UpdateItemRequest) (*inventory.Item, error)
}

// InventoryService defines the interface for inventory business logic
type InventoryService interface {
	ListItems(ctx context.Context, page, limit int, category string) ([]*inventory.Item, *common.Pagination, error)
	GetItem(ctx context.Context, id uuid.UUID) (*inventory.Item, error)
	CreateItem(ctx context.Context, req *inventory.CreateItemRequest) (*inventory.Item, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req *inventory.UpdateItemRequest) (*inventory.Item, error)
}
