package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/kanishkgoel/gridboard/internal/common"
	"github.com/kanishkgoel/gridboard/internal/server/models"
)

// objectStore is the slice of the object-store client this repository
// needs; *s3x.Client satisfies it.
type objectStore interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
	PutObject(ctx context.Context, key string, body []byte) error
}

// S3Repository keeps all users in one users.json object, mirroring the
// object-storage iteration of the app: load the whole array, modify, put it
// back. The mutex only serializes writers within this process; cross-process
// races keep last-write-wins semantics.
type S3Repository struct {
	mu     sync.Mutex
	client objectStore
	key    string
}

// NewS3Repository constructs a repository over a bucket-scoped client.
func NewS3Repository(client objectStore) *S3Repository {
	return &S3Repository{client: client, key: UsersFileName}
}

func (r *S3Repository) load(ctx context.Context) ([]*models.User, error) {
	data, err := r.client.GetObject(ctx, r.key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return []*models.User{}, nil
		}
		return nil, err
	}

	var users []*models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.key, err)
	}
	return users, nil
}

func (r *S3Repository) save(ctx context.Context, users []*models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	return r.client.PutObject(ctx, r.key, data)
}

func (r *S3Repository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	users = append(users, user)
	if err := r.save(ctx, users); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *S3Repository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.load(ctx)
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

func (r *S3Repository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	users, err := r.load(ctx)
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
