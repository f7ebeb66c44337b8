// Package prefs provides the preference store: one PreferenceRecord per
// username, with one implementation per storage backend.
//
// There is deliberately no referential integrity with the user store; the
// two are independent keyed mappings.
package prefs

import (
	"context"

	"github.com/kanishkgoel/gridboard/internal/server/models"
)

// Repository is the preference store contract.
//
// Put is a full replacement with upsert semantics: the stored record is
// overwritten, never merged, and created if absent. Get returns
// common.ErrorNotFound when no record exists for the username.
// Initialize seeds the empty record at registration time.
type Repository interface {
	Get(ctx context.Context, username string) (*models.PreferenceRecord, error)
	Put(ctx context.Context, username string, record *models.PreferenceRecord) error
	Initialize(ctx context.Context, username string) error
}
