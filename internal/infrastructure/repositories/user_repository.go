package repositories

import (
	"context"
	"sync"

	"github.com/centralmgmt/portal/internal/core/domain/user"
	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/google/uuid"
)

// UserRepository is the in-memory user directory.
type UserRepository struct {
	mu    sync.RWMutex
	users []*user.User
}

func NewUserRepository(seed ...*user.User) *UserRepository {
	return &UserRepository{users: append([]*user.User{}, seed...)}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

var _ ports.UserRepository = (*UserRepository)(nil)
