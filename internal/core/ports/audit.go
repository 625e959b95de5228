package ports

import (
	"context"

	"github.com/centralmgmt/portal/internal/core/domain/audit"
	"github.com/centralmgmt/portal/internal/core/domain/common"
)

// AuditRepository defines the interface for the bounded audit trail.
// Append prepends the entry (most recent first) and evicts past the cap;
// List applies the filter and slicing and returns the filtered total.
type AuditRepository interface {
	Append(ctx context.Context, log *audit.Log) error
	List(ctx context.Context, filter *audit.Filter) ([]*audit.Log, int, error)
}

// AuditService defines the interface for audit logging business logic
type AuditService interface {
	LogAction(ctx context.Context, entry *audit.Entry) (*audit.Log, error)
	GetLogs(ctx context.Context, filter *audit.Filter) ([]*audit.Log, *common.Pagination, error)
}
