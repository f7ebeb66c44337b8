package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kanishkgoel/gridboard/internal/common"
	"github.com/kanishkgoel/gridboard/internal/dbx"
	"github.com/kanishkgoel/gridboard/internal/server/models"
)

// PostgresRepository implements preference storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). Grid payloads live in JSONB columns.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, username string) (*models.PreferenceRecord, error) {
	query :=
		`SELECT filters, session, columns FROM preferences
		 WHERE username = $1
		 `

	record := &models.PreferenceRecord{}
	var columns []byte
	err := r.db.QueryRowContext(ctx, query, username).Scan(&record.Filters, &record.Session, &columns)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if columns != nil {
		record.Columns = columns
	}
	return record, nil
}

// Put upserts the record for username, replacing every column of an
// existing row.
func (r *PostgresRepository) Put(ctx context.Context, username string, record *models.PreferenceRecord) error {
	query := `
		INSERT INTO preferences (username, filters, session, columns)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username)
		DO UPDATE SET
			filters = EXCLUDED.filters,
			session = EXCLUDED.session,
			columns = EXCLUDED.columns;
	`

	var columns any
	if record.Columns != nil {
		columns = []byte(record.Columns)
	}

	_, err := r.db.ExecContext(ctx, query,
		username, []byte(record.Filters), []byte(record.Session), columns)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Initialize(ctx context.Context, username string) error {
	return r.Put(ctx, username, models.EmptyPreferenceRecord())
}
