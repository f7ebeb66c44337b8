package users

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

// UsersFileName is the collection file holding the array of user records.
const UsersFileName = "users.json"

// FileRepository keeps all users in a single JSON array file under the data
// directory. Writes are serialized by an internal mutex and written
// atomically, so a concurrent save yields one intact file, never an
// interleaved one.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

// NewFileRepository constructs a repository rooted at dataDir.
func NewFileRepository(dataDir string) *FileRepository {
	return &FileRepository{path: filepath.Join(dataDir, UsersFileName)}
}

func (r *FileRepository) load() ([]*models.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*models.User{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var users []*models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.path, err)
	}
	return users, nil
}

func (r *FileRepository) save(users []*models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	return filex.WriteFileAtomic(r.path, data)
}

func (r *FileRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	users = append(users, user)
	if err := r.save(users); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *FileRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *FileRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}
