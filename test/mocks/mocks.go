package mocks

import (
	"context"

	"github.com/centralmgmt/portal/internal/core/domain/audit"
	"github.com/centralmgmt/portal/internal/core/domain/auth"
	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/inventory"
	"github.com/centralmgmt/portal/internal/core/domain/notification"
	"github.com/centralmgmt/portal/internal/core/domain/order"
	"github.com/centralmgmt/portal/internal/core/domain/search"
	"github.com/centralmgmt/portal/internal/core/domain/user"
	"github.com/google/uuid"
)

// Function-field mocks: set only the functions a test cares about; unset
// functions return zero values.

type AuthServiceMock struct {
	LoginFn         func(ctx context.Context, req *auth.LoginRequest) (*user.User, string, error)
	ValidateTokenFn func(token string) (*auth.Claims, error)
	RefreshFn       func(ctx context.Context, claims *auth.Claims) (string, error)
}

func (m *AuthServiceMock) Login(ctx context.Context, req *auth.LoginRequest) (*user.User, string, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, req)
	}
	return nil, "", auth.ErrInvalidCredentials
}

func (m *AuthServiceMock) ValidateToken(token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(token)
	}
	return nil, auth.ErrInvalidCredentials
}

func (m *AuthServiceMock) Refresh(ctx context.Context, claims *auth.Claims) (string, error) {
	if m.RefreshFn != nil {
		return m.RefreshFn(ctx, claims)
	}
	return "", nil
}

type InventoryServiceMock struct {
	ListItemsFn  func(ctx context.Context, page, limit int, category string) ([]*inventory.Item, *common.Pagination, error)
	GetItemFn    func(ctx context.Context, id uuid.UUID) (*inventory.Item, error)
	CreateItemFn func(ctx context.Context, req *inventory.CreateItemRequest) (*inventory.Item, error)
	UpdateItemFn func(ctx context.Context, id uuid.UUID, req *inventory.UpdateItemRequest) (*inventory.Item, error)
}

func (m *InventoryServiceMock) ListItems(ctx context.Context, page, limit int, category string) ([]*inventory.Item, *common.Pagination, error) {
	if m.ListItemsFn != nil {
		return m.ListItemsFn(ctx, page, limit, category)
	}
	return nil, common.NewPagination(1, 20, 0), nil
}

func (m *InventoryServiceMock) GetItem(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	if m.GetItemFn != nil {
		return m.GetItemFn(ctx, id)
	}
	return nil, inventory.ErrNotFound
}

func (m *InventoryServiceMock) CreateItem(ctx context.Context, req *inventory.CreateItemRequest) (*inventory.Item, error) {
	if m.CreateItemFn != nil {
		return m.CreateItemFn(ctx, req)
	}
	return nil, nil
}

func (m *InventoryServiceMock) UpdateItem(ctx context.Context, id uuid.UUID, req *inventory.UpdateItemRequest) (*inventory.Item, error) {
	if m.UpdateItemFn != nil {
		return m.UpdateItemFn(ctx, id, req)
	}
	return nil, inventory.ErrNotFound
}

type OrderServiceMock struct {
	ListOrdersFn        func(ctx context.Context, page, limit int, status string) ([]*order.Order, *common.Pagination, error)
	GetOrderFn          func(ctx context.Context, id uuid.UUID) (*order.Order, error)
	CreateOrderFn       func(ctx context.Context, req *order.CreateOrderRequest) (*order.Order, error)
	UpdateOrderStatusFn func(ctx context.Context, id uuid.UUID, req *order.UpdateStatusRequest) (*order.Order, error)
}

func (m *OrderServiceMock) ListOrders(ctx context.Context, page, limit int, status string) ([]*order.Order, *common.Pagination, error) {
	if m.ListOrdersFn != nil {
		return m.ListOrdersFn(ctx, page, limit, status)
	}
	return nil, common.NewPagination(1, 20, 0), nil
}

func (m *OrderServiceMock) GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	if m.GetOrderFn != nil {
		return m.GetOrderFn(ctx, id)
	}
	return nil, order.ErrNotFound
}

func (m *OrderServiceMock) CreateOrder(ctx context.Context, req *order.CreateOrderRequest) (*order.Order, error) {
	if m.CreateOrderFn != nil {
		return m.CreateOrderFn(ctx, req)
	}
	return nil, nil
}

func (m *OrderServiceMock) UpdateOrderStatus(ctx context.Context, id uuid.UUID, req *order.UpdateStatusRequest) (*order.Order, error) {
	if m.UpdateOrderStatusFn != nil {
		return m.UpdateOrderStatusFn(ctx, id, req)
	}
	return nil, order.ErrNotFound
}

type SearchServiceMock struct {
	SearchFn func(ctx context.Context, query string, types []string) ([]*search.Result, error)
}

func (m *SearchServiceMock) Search(ctx context.Context, query string, types []string) ([]*search.Result, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, query, types)
	}
	return nil, nil
}

type AuditServiceMock struct {
	LogActionFn func(ctx context.Context, entry *audit.Entry) (*audit.Log, error)
	GetLogsFn   func(ctx context.Context, filter *audit.Filter) ([]*audit.Log, *common.Pagination, error)
}

func (m *AuditServiceMock) LogAction(ctx context.Context, entry *audit.Entry) (*audit.Log, error) {
	if m.LogActionFn != nil {
		return m.LogActionFn(ctx, entry)
	}
	return nil, nil
}

func (m *AuditServiceMock) GetLogs(ctx context.Context, filter *audit.Filter) ([]*audit.Log, *common.Pagination, error) {
	if m.GetLogsFn != nil {
		return m.GetLogsFn(ctx, filter)
	}
	return nil, common.NewPagination(1, 50, 0), nil
}

type NotificationServiceMock struct {
	NotifyFn      func(ctx context.Context, req *notification.CreateRequest) (*notification.Notification, error)
	ListFn        func(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, limit int) ([]*notification.Notification, *common.Pagination, error)
	MarkReadFn    func(ctx context.Context, id, userID uuid.UUID) error
	MarkAllReadFn func(ctx context.Context, userID uuid.UUID) error
	DeleteFn      func(ctx context.Context, id, userID uuid.UUID) error
}

func (m *NotificationServiceMock) Notify(ctx context.Context, req *notification.CreateRequest) (*notification.Notification, error) {
	if m.NotifyFn != nil {
		return m.NotifyFn(ctx, req)
	}
	return nil, nil
}

func (m *NotificationServiceMock) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, limit int) ([]*notification.Notification, *common.Pagination, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, unreadOnly, page, limit)
	}
	return nil, common.NewPagination(1, 20, 0), nil
}

func (m *NotificationServiceMock) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, id, userID)
	}
	return nil
}

func (m *NotificationServiceMock) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if m.MarkAllReadFn != nil {
		return m.MarkAllReadFn(ctx, userID)
	}
	return nil
}

func (m *NotificationServiceMock) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, userID)
	}
	return nil
}

type UserRepositoryMock struct {
	GetByEmailFn func(ctx context.Context, email string) (*user.User, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*user.User, error)
}

func (m *UserRepositoryMock) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, user.ErrNotFound
}

func (m *UserRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, user.ErrNotFound
}

type InventoryRepositoryMock struct {
	ListFn    func(ctx context.Context, page, limit int, category string) ([]*inventory.Item, int, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*inventory.Item, error)
	CreateFn  func(ctx context.Context, item *inventory.Item) error
	UpdateFn  func(ctx context.Context, id uuid.UUID, req *inventory.UpdateItemRequest) (*inventory.Item, error)
}

func (m *InventoryRepositoryMock) List(ctx context.Context, page, limit int, category string) ([]*inventory.Item, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, limit, category)
	}
	return nil, 0, nil
}

func (m *InventoryRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, inventory.ErrNotFound
}

func (m *InventoryRepositoryMock) Create(ctx context.Context, item *inventory.Item) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, item)
	}
	return nil
}

func (m *InventoryRepositoryMock) Update(ctx context.Context, id uuid.UUID, req *inventory.UpdateItemRequest) (*inventory.Item, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, req)
	}
	return nil, inventory.ErrNotFound
}

type OrderRepositoryMock struct {
	ListFn         func(ctx context.Context, page, limit int, status string) ([]*order.Order, int, error)
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*order.Order, error)
	CreateFn       func(ctx context.Context, req *order.CreateOrderRequest) (*order.Order, error)
	UpdateStatusFn func(ctx context.Context, id uuid.UUID, status order.Status, notes string) (*order.Order, error)
}

func (m *OrderRepositoryMock) List(ctx context.Context, page, limit int, status string) ([]*order.Order, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, limit, status)
	}
	return nil, 0, nil
}

func (m *OrderRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, order.ErrNotFound
}

func (m *OrderRepositoryMock) Create(ctx context.Context, req *order.CreateOrderRequest) (*order.Order, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, req)
	}
	return nil, nil
}

func (m *OrderRepositoryMock) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, notes string) (*order.Order, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status, notes)
	}
	return nil, order.ErrNotFound
}

type AuditRepositoryMock struct {
	AppendFn func(ctx context.Context, log *audit.Log) error
	ListFn   func(ctx context.Context, filter *audit.Filter) ([]*audit.Log, int, error)
}

func (m *AuditRepositoryMock) Append(ctx context.Context, log *audit.Log) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, log)
	}
	return nil
}

func (m *AuditRepositoryMock) List(ctx context.Context, filter *audit.Filter) ([]*audit.Log, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return nil, 0, nil
}
