package storemanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/kanishkgoel/gridboard/internal/server/config"
	"github.com/kanishkgoel/gridboard/internal/server/migrations"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/dataset"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/prefs"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/users"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// PostgresManager vends PostgreSQL-backed stores over one connection pool.
// The dataset still comes from the local data directory; no database
// iteration of the app ever moved the static table into the DB.
type PostgresManager struct {
	db      *sql.DB
	users   *users.PostgresRepository
	prefs   *prefs.PostgresRepository
	dataset *dataset.FileSource
}

// NewPostgresManager opens the pool via the pgx stdlib driver and runs the
// embedded goose migrations.
func NewPostgresManager(ctx context.Context, cfg *config.Config) (*PostgresManager, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	m := &PostgresManager{
		db:      db,
		users:   users.NewPostgresRepository(db),
		prefs:   prefs.NewPostgresRepository(db),
		dataset: dataset.NewFileSource(cfg.DataDir, cfg.DatasetKey),
	}

	if err := m.runMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return m, nil
}

func (m *PostgresManager) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresManager) Users() users.Repository { return m.users }
func (m *PostgresManager) Prefs() prefs.Repository { return m.prefs }
func (m *PostgresManager) Dataset() dataset.Source { return m.dataset }
func (m *PostgresManager) Close() error            { return m.db.Close() }
