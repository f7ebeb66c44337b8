package storemanager

import (
	"github.com/kanishkgoel/gridboard/internal/server/config"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/dataset"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/prefs"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/users"
)

// MemoryManager keeps both stores in process memory. Useful for tests and
// local development; the dataset is still read from the data directory.
type MemoryManager struct {
	users   *users.MemoryRepository
	prefs   *prefs.MemoryRepository
	dataset *dataset.FileSource
}

func NewMemoryManager(cfg *config.Config) (*MemoryManager, error) {
	return &MemoryManager{
		users:   users.NewMemoryRepository(),
		prefs:   prefs.NewMemoryRepository(),
		dataset: dataset.NewFileSource(cfg.DataDir, cfg.DatasetKey),
	}, nil
}

func (m *MemoryManager) Users() users.Repository { return m.users }
func (m *MemoryManager) Prefs() prefs.Repository { return m.prefs }
func (m *MemoryManager) Dataset() dataset.Source { return m.dataset }
func (m *MemoryManager) Close() error            { return nil }
