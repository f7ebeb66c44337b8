package storemanager

import (
	"github.com/kanishkgoel/gridboard/internal/filex"
	"github.com/kanishkgoel/gridboard/internal/server/config"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/dataset"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/prefs"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/users"
)

// FileManager stores everything as JSON files under the data directory:
// users.json, user_prefs/<username>.json, and the dataset file.
type FileManager struct {
	users   *users.FileRepository
	prefs   *prefs.FileRepository
	dataset *dataset.FileSource
}

func NewFileManager(cfg *config.Config) (*FileManager, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	prefsRepo, err := prefs.NewFileRepository(dir)
	if err != nil {
		return nil, err
	}

	return &FileManager{
		users:   users.NewFileRepository(dir),
		prefs:   prefsRepo,
		dataset: dataset.NewFileSource(dir, cfg.DatasetKey),
	}, nil
}

func (m *FileManager) Users() users.Repository { return m.users }
func (m *FileManager) Prefs() prefs.Repository { return m.prefs }
func (m *FileManager) Dataset() dataset.Source { return m.dataset }
func (m *FileManager) Close() error            { return nil }
