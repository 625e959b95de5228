package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/centralmgmt/portal/internal/core/domain/notification"
	"github.com/google/uuid"
)

func TestNotificationRepository_ListScopedToUser(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	_ = repo.Create(ctx, &notification.Notification{ID: uuid.New(), UserID: alice, Title: "a"})
	_ = repo.Create(ctx, &notification.Notification{ID: uuid.New(), UserID: bob, Title: "b"})

	got, err := repo.ListByUser(ctx, alice, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "a" {
		t.Fatalf("expected only alice's notification, got %d", len(got))
	}
}

func TestNotificationRepository_UnreadOnly(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()
	userID := uuid.New()

	read := &notification.Notification{ID: uuid.New(), UserID: userID, Read: true}
	unread := &notification.Notification{ID: uuid.New(), UserID: userID}
	_ = repo.Create(ctx, read)
	_ = repo.Create(ctx, unread)

	got, _ := repo.ListByUser(ctx, userID, true)
	if len(got) != 1 || got[0].ID != unread.ID {
		t.Fatalf("expected only the unread notification, got %d", len(got))
	}
}

func TestNotificationRepository_PerUserCap(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()
	userID := uuid.New()
	other := uuid.New()

	_ = repo.Create(ctx, &notification.Notification{ID: uuid.New(), UserID: other, Title: "keep"})
	for i := 0; i < notification.MaxPerUser+10; i++ {
		_ = repo.Create(ctx, &notification.Notification{ID: uuid.New(), UserID: userID, Title: fmt.Sprintf("n%d", i)})
	}

	got, _ := repo.ListByUser(ctx, userID, false)
	if len(got) != notification.MaxPerUser {
		t.Fatalf("expected backlog capped at %d, got %d", notification.MaxPerUser, len(got))
	}
	// Newest first; the oldest entries were dropped.
	if got[0].Title != fmt.Sprintf("n%d", notification.MaxPerUser+9) {
		t.Fatalf("expected newest notification first, got %s", got[0].Title)
	}

	// Other users are unaffected by the cap enforcement.
	kept, _ := repo.ListByUser(ctx, other, false)
	if len(kept) != 1 {
		t.Fatalf("expected other user's notification kept, got %d", len(kept))
	}
}

func TestNotificationRepository_MarkReadScoping(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()
	owner, intruder := uuid.New(), uuid.New()

	n := &notification.Notification{ID: uuid.New(), UserID: owner}
	_ = repo.Create(ctx, n)

	// Wrong owner: silent no-op.
	if err := repo.MarkRead(ctx, n.ID, intruder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := repo.ListByUser(ctx, owner, false)
	if got[0].Read {
		t.Fatal("expected notification untouched by non-owner")
	}

	if err := repo.MarkRead(ctx, n.ID, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ = repo.ListByUser(ctx, owner, false)
	if !got[0].Read {
		t.Fatal("expected notification marked read by owner")
	}
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		_ = repo.Create(ctx, &notification.Notification{ID: uuid.New(), UserID: userID})
	}
	_ = repo.MarkAllRead(ctx, userID)

	got, _ := repo.ListByUser(ctx, userID, true)
	if len(got) != 0 {
		t.Fatalf("expected no unread notifications, got %d", len(got))
	}
}

func TestNotificationRepository_DeleteScoping(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()
	owner, intruder := uuid.New(), uuid.New()

	n := &notification.Notification{ID: uuid.New(), UserID: owner}
	_ = repo.Create(ctx, n)

	_ = repo.Delete(ctx, n.ID, intruder)
	if got, _ := repo.ListByUser(ctx, owner, false); len(got) != 1 {
		t.Fatal("expected non-owner delete to be a no-op")
	}

	_ = repo.Delete(ctx, n.ID, owner)
	if got, _ := repo.ListByUser(ctx, owner, false); len(got) != 0 {
		t.Fatal("expected owner delete to remove the notification")
	}
}
