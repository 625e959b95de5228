package ports

import (
	"context"

	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/notification"
	"github.com/google/uuid"
)

// NotificationRepository defines the interface for per-user notification
// storage. Mutations are scoped to the owning user; a non-owned or missing
// id is a silent no-op.
type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*notification.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// NotificationService defines the interface for notification business logic
type NotificationService interface {
	Notify(ctx context.Context, req *notification.CreateRequest) (*notification.Notification, error)
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, limit int) ([]*notification.Notification, *common.Pagination, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
