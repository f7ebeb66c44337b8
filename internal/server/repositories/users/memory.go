package users

import (
	"context"
	"sync"

	"github.com/kanishkgoel/gridboard/internal/common"
	"github.com/kanishkgoel/gridboard/internal/server/models"
)

// MemoryRepository is an in-process user store used by the memory backend
// and by tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	byName  map[string]*models.User
	byEmail map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byName:  make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	r.byName[user.Username] = user
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *MemoryRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.byName[username]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.byName[username]; ok {
		return u, nil
	}
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}
