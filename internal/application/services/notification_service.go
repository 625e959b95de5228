package services

import (
	"context"
	"time"

	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/notification"
	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type NotificationService struct {
	repo   ports.NotificationRepository
	logger *logrus.Logger
}

func NewNotificationService(repo ports.NotificationRepository, logger *logrus.Logger) ports.NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

func (s *NotificationService) Notify(ctx context.Context, req *notification.CreateRequest) (*notification.Notification, error) {
	n := &notification.Notification{
		ID:        uuid.New(),
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
		Link:      req.Link,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": n.UserID, "type": n.Type, "title": n.Title}).Debug("notification created")
	}
	return n, nil
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, limit int) ([]*notification.Notification, *common.Pagination, error) {
	page, limit = clampPagination(page, limit, defaultLimit)

	all, err := s.repo.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, nil, err
	}

	start := (page - 1) * limit
	if start >= len(all) {
		return []*notification.Notification{}, common.NewPagination(page, limit, len(all)), nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], common.NewPagination(page, limit, len(all)), nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}
