package ports

import (
	"context"

	"github.com/centralmgmt/portal/internal/core/domain/user"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user lookup
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}
