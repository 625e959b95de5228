package repositories

import (
	"context"
	"sync"

	"github.com/centralmgmt/portal/internal/core/domain/notification"
	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/google/uuid"
)

// NotificationRepository is the in-memory notification store. A single
// slice holds every user's notifications, most recent first, capped per
// user. Owner-scoped mutations on a missing or non-owned id are silent
// no-ops.
type NotificationRepository struct {
	mu            sync.RWMutex
	notifications []*notification.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *n
	r.notifications = append([]*notification.Notification{&cp}, r.notifications...)

	// Enforce the per-user cap by dropping that user's oldest entries.
	count := 0
	kept := r.notifications[:0]
	for _, existing := range r.notifications {
		if existing.UserID == n.UserID {
			count++
			if count > notification.MaxPerUser {
				continue
			}
		}
		kept = append(kept, existing)
	}
	r.notifications = kept
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*notification.Notification, 0)
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	return out, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			n.Read = true
			return nil
		}
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)
