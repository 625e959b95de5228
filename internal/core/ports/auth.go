package ports

import (
	"context"

	"github.com/centralmgmt/portal/internal/core/domain/auth"
	"github.com/centralmgmt/portal/internal/core/domain/user"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *auth.LoginRequest) (*user.User, string, error)
	ValidateToken(token string) (*auth.Claims, error)
	Refresh(ctx context.Context, claims *auth.Claims) (string, error)
}
