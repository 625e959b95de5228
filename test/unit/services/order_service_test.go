package services_test

import (
	"context"
	"errors"
	"testing"

	impl "github.com/centralmgmt/portal/internal/application/services"
	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/order"
	"github.com/centralmgmt/portal/test/mocks"
	"github.com/google/uuid"
)

func validOrderRequest() *order.CreateOrderRequest {
	return &order.CreateOrderRequest{
		Items:       []order.Item{{ID: uuid.New(), Name: "Tips", Quantity: 1, UnitPrice: 10, TotalPrice: 10}},
		TotalAmount: 10,
		RequestedBy: "Jane",
	}
}

func TestCreateOrder_RequiresItems(t *testing.T) {
	svc := impl.NewOrderService(&mocks.OrderRepositoryMock{}, nil)

	req := validOrderRequest()
	req.Items = nil
	_, err := svc.CreateOrder(context.Background(), req)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateOrder_RequiresRequestedBy(t *testing.T) {
	svc := impl.NewOrderService(&mocks.OrderRepositoryMock{}, nil)

	req := validOrderRequest()
	req.RequestedBy = ""
	_, err := svc.CreateOrder(context.Background(), req)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateOrder_RejectsUnknownStatus(t *testing.T) {
	svc := impl.NewOrderService(&mocks.OrderRepositoryMock{}, nil)

	req := validOrderRequest()
	req.Status = order.Status("bogus")
	_, err := svc.CreateOrder(context.Background(), req)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	svc := impl.NewOrderService(&mocks.OrderRepositoryMock{}, nil)

	_, err := svc.UpdateOrderStatus(context.Background(), uuid.New(), &order.UpdateStatusRequest{Status: "bogus"})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateOrderStatus_AllowsAnyTransition(t *testing.T) {
	id := uuid.New()
	repo := &mocks.OrderRepositoryMock{
		UpdateStatusFn: func(ctx context.Context, gotID uuid.UUID, status order.Status, notes string) (*order.Order, error) {
			return &order.Order{ID: gotID, Status: status, Notes: notes}, nil
		},
	}
	svc := impl.NewOrderService(repo, nil)

	// delivered back to pending is deliberately allowed
	o, err := svc.UpdateOrderStatus(context.Background(), id, &order.UpdateStatusRequest{Status: order.StatusPending})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != order.StatusPending {
		t.Fatalf("expected pending, got %s", o.Status)
	}
}

func TestListOrders_PropagatesStoreError(t *testing.T) {
	repo := &mocks.OrderRepositoryMock{
		ListFn: func(ctx context.Context, page, limit int, status string) ([]*order.Order, int, error) {
			return nil, 0, errors.New("boom")
		},
	}
	svc := impl.NewOrderService(repo, nil)

	_, _, err := svc.ListOrders(context.Background(), 1, 20, "")
	if err == nil {
		t.Fatal("expected store error to surface")
	}
}
