package storemanager

import (
	"context"

	"github.com/kanishkgoel/gridboard/internal/server/config"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/dataset"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/prefs"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/users"
	"github.com/kanishkgoel/gridboard/internal/server/s3x"
)

// S3Manager stores users.json, user_prefs.json, and the dataset object in
// one bucket, like the object-storage iteration of the app.
type S3Manager struct {
	users   *users.S3Repository
	prefs   *prefs.S3Repository
	dataset *dataset.S3Source
}

func NewS3Manager(ctx context.Context, cfg *config.Config) (*S3Manager, error) {
	client, err := s3x.NewClient(ctx, s3x.Settings{
		RootUser:     cfg.S3RootUser,
		RootPassword: cfg.S3RootPassword,
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
	})
	if err != nil {
		return nil, err
	}

	return &S3Manager{
		users:   users.NewS3Repository(client),
		prefs:   prefs.NewS3Repository(client),
		dataset: dataset.NewS3Source(client, cfg.DatasetKey),
	}, nil
}

func (m *S3Manager) Users() users.Repository { return m.users }
func (m *S3Manager) Prefs() prefs.Repository { return m.prefs }
func (m *S3Manager) Dataset() dataset.Source { return m.dataset }
func (m *S3Manager) Close() error            { return nil }
