package prefs

import (
	"context"
	"sync"

	"github.com/kanishkgoel/gridboard/internal/common"
	"github.com/kanishkgoel/gridboard/internal/server/models"
)

// MemoryRepository is an in-process preference store used by the memory
// backend and by tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*models.PreferenceRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]*models.PreferenceRecord)}
}

func (r *MemoryRepository) Get(ctx context.Context, username string) (*models.PreferenceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if record, ok := r.records[username]; ok {
		return record, nil
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) Put(ctx context.Context, username string, record *models.PreferenceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[username] = record
	return nil
}

func (r *MemoryRepository) Initialize(ctx context.Context, username string) error {
	return r.Put(ctx, username, models.EmptyPreferenceRecord())
}
