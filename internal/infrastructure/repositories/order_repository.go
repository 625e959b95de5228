package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/centralmgmt/portal/internal/core/domain/order"
	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/google/uuid"
)

// OrderRepository is the in-memory order store. Order numbers derive from
// the collection length, so number generation and the append happen under
// the same write lock.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*order.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) List(ctx context.Context, page, limit int, status string) ([]*order.Order, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := r.orders
	if status != "" {
		filtered = make([]*order.Order, 0)
		for _, o := range r.orders {
			if string(o.Status) == status {
				filtered = append(filtered, o)
			}
		}
	}

	return pageSlice(filtered, page, limit), len(filtered), nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, order.ErrNotFound
}

func (r *OrderRepository) Create(ctx context.Context, req *order.CreateOrderRequest) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := req.Status
	if status == "" {
		status = order.StatusPending
	}

	now := time.Now().UTC()
	o := &order.Order{
		ID:          uuid.New(),
		OrderNumber: fmt.Sprintf("ORD-%d-%03d", now.Year(), len(r.orders)+1),
		Status:      status,
		Items:       append([]order.Item{}, req.Items...),
		TotalAmount: req.TotalAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
		RequestedBy: req.RequestedBy,
		ApprovedBy:  req.ApprovedBy,
		Vendor:      req.Vendor,
		Notes:       req.Notes,
	}
	r.orders = append(r.orders, o)

	cp := *o
	return &cp, nil
}

// UpdateStatus sets the status unconditionally; any status may follow any
// other. Notes are overwritten only when non-empty.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, notes string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID != id {
			continue
		}
		o.Status = status
		if notes != "" {
			o.Notes = notes
		}
		o.UpdatedAt = time.Now().UTC()
		cp := *o
		return &cp, nil
	}
	return nil, order.ErrNotFound
}

var _ ports.OrderRepository = (*OrderRepository)(nil)
