package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/AlibekovAA/feedboard/backend/internal/user/domain"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	FindByLogin(ctx context.Context, login string) (domain.User, error)
}

// InMemoryRepository is the credential store. It is seeded once at startup
// and exposes no mutation operations; registration does not exist in this
// system. Logins are unique and case-sensitive.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewInMemoryRepository(seed ...domain.User) *InMemoryRepository {
	users := make(map[string]domain.User, len(seed))
	for _, u := range seed {
		users[u.Login] = u
	}
	return &InMemoryRepository{users: users}
}

func (r *InMemoryRepository) FindByLogin(ctx context.Context, login string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[login]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}
