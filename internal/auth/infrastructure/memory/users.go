package memory

import (
	"context"
	"sync"

	"github.com/Lexv0lk/checkout-store/internal/auth/domain"
)

type UsersRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

func NewUsersRepository() *UsersRepository {
	return &UsersRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UsersRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	email := domain.NormalizeEmail(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[email]; taken {
		return domain.User{}, &domain.DuplicateEmailError{Email: email}
	}

	r.byID[user.ID] = user
	r.byEmail[email] = user.ID

	return user, nil
}

func (r *UsersRepository) TryGetUserByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return domain.User{}, false, nil
	}

	return r.byID[id], true, nil
}

func (r *UsersRepository) TryGetUserByID(ctx context.Context, userID string) (domain.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[userID]
	return user, ok, nil
}
