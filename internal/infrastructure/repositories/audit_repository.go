package repositories

import (
	"context"
	"sync"

	"github.com/centralmgmt/portal/internal/core/domain/audit"
	"github.com/centralmgmt/portal/internal/core/ports"
)

// AuditRepository is the bounded in-memory audit trail, most recent first.
type AuditRepository struct {
	mu   sync.RWMutex
	logs []*audit.Log
	cap  int
}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{cap: audit.MaxEntries}
}

func (r *AuditRepository) Append(ctx context.Context, log *audit.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs = append([]*audit.Log{log}, r.logs...)
	if len(r.logs) > r.cap {
		r.logs = r.logs[:r.cap]
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context, filter *audit.Filter) ([]*audit.Log, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]*audit.Log, 0, len(r.logs))
	for _, l := range r.logs {
		if filter.EntityType != "" && l.EntityType != filter.EntityType {
			continue
		}
		if filter.UserID != "" && l.UserID.String() != filter.UserID {
			continue
		}
		filtered = append(filtered, l)
	}

	return pageSlice(filtered, filter.Page, filter.Limit), len(filtered), nil
}

var _ ports.AuditRepository = (*AuditRepository)(nil)
