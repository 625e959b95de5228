package services

import (
	"context"
	"time"

	"github.com/centralmgmt/portal/internal/core/domain/audit"
	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuditService struct {
	repo   ports.AuditRepository
	logger *logrus.Logger
}

func NewAuditService(repo ports.AuditRepository, logger *logrus.Logger) ports.AuditService {
	return &AuditService{repo: repo, logger: logger}
}

func (s *AuditService) LogAction(ctx context.Context, entry *audit.Entry) (*audit.Log, error) {
	log := &audit.Log{
		ID:         uuid.New(),
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		UserID:     entry.UserID,
		UserName:   entry.UserName,
		Timestamp:  time.Now().UTC(),
		Details:    entry.Details,
	}
	if log.Details == nil {
		log.Details = map[string]any{}
	}

	if err := s.repo.Append(ctx, log); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"action": entry.Action, "entity_type": entry.EntityType}).WithError(err).Error("failed to persist audit log")
		}
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"action":      log.Action,
			"entity_type": log.EntityType,
			"entity_id":   log.EntityID,
			"user_name":   log.UserName,
		}).Info("audit entry recorded")
	}
	return log, nil
}

func (s *AuditService) GetLogs(ctx context.Context, filter *audit.Filter) ([]*audit.Log, *common.Pagination, error) {
	filter.Page, filter.Limit = clampPagination(filter.Page, filter.Limit, defaultAuditLimit)

	logs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return logs, common.NewPagination(filter.Page, filter.Limit, total), nil
}
