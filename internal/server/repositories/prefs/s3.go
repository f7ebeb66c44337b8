package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/kanishkgoel/gridboard/internal/common"
	"github.com/kanishkgoel/gridboard/internal/server/models"
)

// PrefsFileName is the combined object mapping username to record.
const PrefsFileName = "user_prefs.json"

// objectStore is the slice of the object-store client this repository
// needs; *s3x.Client satisfies it.
type objectStore interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
	PutObject(ctx context.Context, key string, body []byte) error
}

// S3Repository keeps all preference records in one user_prefs.json object,
// mirroring the object-storage iteration: load the whole mapping, replace
// one entry, put it back. Last write wins across concurrent savers.
type S3Repository struct {
	mu     sync.Mutex
	client objectStore
	key    string
}

// NewS3Repository constructs a repository over a bucket-scoped client.
func NewS3Repository(client objectStore) *S3Repository {
	return &S3Repository{client: client, key: PrefsFileName}
}

func (r *S3Repository) load(ctx context.Context) (map[string]*models.PreferenceRecord, error) {
	data, err := r.client.GetObject(ctx, r.key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return map[string]*models.PreferenceRecord{}, nil
		}
		return nil, err
	}

	prefs := map[string]*models.PreferenceRecord{}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.key, err)
	}
	return prefs, nil
}

func (r *S3Repository) save(ctx context.Context, prefs map[string]*models.PreferenceRecord) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	return r.client.PutObject(ctx, r.key, data)
}

func (r *S3Repository) Get(ctx context.Context, username string) (*models.PreferenceRecord, error) {
	prefs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	record, ok := prefs[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return record, nil
}

func (r *S3Repository) Put(ctx context.Context, username string, record *models.PreferenceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefs, err := r.load(ctx)
	if err != nil {
		return err
	}

	prefs[username] = record
	return r.save(ctx, prefs)
}

func (r *S3Repository) Initialize(ctx context.Context, username string) error {
	return r.Put(ctx, username, models.EmptyPreferenceRecord())
}
