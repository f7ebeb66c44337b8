package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kanishkgoel/gridboard/internal/common"
	"github.com/kanishkgoel/gridboard/internal/filex"
	"github.com/kanishkgoel/gridboard/internal/server/models"
)

// PrefsDirName is the subdirectory holding one <username>.json per user.
const PrefsDirName = "user_prefs"

// FileRepository keeps one JSON file per username under the data directory,
// mirroring the filesystem iteration of the app. Writes go through an
// atomic rename, so concurrent saves for a username end with one intact
// payload (last write wins).
type FileRepository struct {
	mu  sync.Mutex
	dir string
}

// NewFileRepository constructs a repository rooted at dataDir, creating the
// preferences subdirectory if needed.
func NewFileRepository(dataDir string) (*FileRepository, error) {
	dir, err := filex.EnsureDir(filepath.Join(dataDir, PrefsDirName))
	if err != nil {
		return nil, err
	}
	return &FileRepository{dir: dir}, nil
}

func (r *FileRepository) pathFor(username string) string {
	return filepath.Join(r.dir, username+".json")
}

func (r *FileRepository) Get(ctx context.Context, username string) (*models.PreferenceRecord, error) {
	data, err := os.ReadFile(r.pathFor(username))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("read prefs for %s: %w", username, err)
	}

	record := &models.PreferenceRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("parse prefs for %s: %w", username, err)
	}
	return record, nil
}

func (r *FileRepository) Put(ctx context.Context, username string, record *models.PreferenceRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs for %s: %w", username, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return filex.WriteFileAtomic(r.pathFor(username), data)
}

func (r *FileRepository) Initialize(ctx context.Context, username string) error {
	return r.Put(ctx, username, models.EmptyPreferenceRecord())
}
