package ports

import (
	"context"

	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/order"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for order storage. Create assigns
// the id, order number and timestamps under the store's write lock.
type OrderRepository interface {
	List(ctx context.Context, page, limit int, status string) ([]*order.Order, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	Create(ctx context.Context, req *order.CreateOrderRequest) (*order.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, notes string) (*order.Order, error)
}

// OrderService defines the interface for order business logic
type OrderService interface {
	ListOrders(ctx context.Context, page, limit int, status string) ([]*order.Order, *common.Pagination, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error)
	CreateOrder(ctx context.Context, req *order.CreateOrderRequest) (*order.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, req *order.UpdateStatusRequest) (*order.Order, error)
}
