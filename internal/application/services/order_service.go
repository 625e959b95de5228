package services

import (
	"context"
	"fmt"

	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/order"
	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type OrderService struct {
	repo   ports.OrderRepository
	logger *logrus.Logger
}

func NewOrderService(repo ports.OrderRepository, logger *logrus.Logger) ports.OrderService {
	return &OrderService{repo: repo, logger: logger}
}

func (s *OrderService) ListOrders(ctx context.Context, page, limit int, status string) ([]*order.Order, *common.Pagination, error) {
	page, limit = clampPagination(page, limit, defaultLimit)

	orders, total, err := s.repo.List(ctx, page, limit, status)
	if err != nil {
		return nil, nil, err
	}
	return orders, common.NewPagination(page, limit, total), nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OrderService) CreateOrder(ctx context.Context, req *order.CreateOrderRequest) (*order.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order requires at least one item", common.ErrValidation)
	}
	if req.RequestedBy == "" {
		return nil, fmt.Errorf("%w: requestedBy is required", common.ErrValidation)
	}
	if req.Status != "" && !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown order status %q", common.ErrValidation, req.Status)
	}

	o, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"order_id": o.ID, "order_number": o.OrderNumber}).Info("order created")
	}
	return o, nil
}

// UpdateOrderStatus sets the new status without validating the transition;
// any status may be set from any other.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, req *order.UpdateStatusRequest) (*order.Order, error) {
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown order status %q", common.ErrValidation, req.Status)
	}

	o, err := s.repo.UpdateStatus(ctx, id, req.Status, req.Notes)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"order_id": o.ID, "status": o.Status}).Info("order status updated")
	}
	return o, nil
}
