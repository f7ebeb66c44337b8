package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kanishkgoel/gridboard/internal/common"
	"github.com/kanishkgoel/gridboard/internal/server/models"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/prefs"
)

// PreferencesService orchestrates save/retrieve of a user's grid state,
// independent of how it is persisted.
type PreferencesService struct {
	prefs prefs.Repository
}

// NewPreferencesService constructs a PreferencesService over the given store.
func NewPreferencesService(prefs prefs.Repository) *PreferencesService {
	return &PreferencesService{prefs: prefs}
}

// Save replaces the stored record for username unconditionally (upsert).
// It never merges with an existing record, and it does not require the
// username to be registered; the stores are independent mappings.
func (s *PreferencesService) Save(ctx context.Context, username string, filters, session, columns json.RawMessage) error {

	if filters == nil {
		filters = json.RawMessage(`{}`)
	}
	if session == nil {
		session = json.RawMessage(`{}`)
	}

	record := &models.PreferenceRecord{
		Filters: filters,
		Session: session,
		Columns: columns,
	}

	if err := s.prefs.Put(ctx, username, record); err != nil {
		return fmt.Errorf("error saving preferences: %w", err)
	}
	return nil
}

// Get returns the stored record for username, or common.ErrorNotFound if
// none exists.
func (s *PreferencesService) Get(ctx context.Context, username string) (*models.PreferenceRecord, error) {

	record, err := s.prefs.Get(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading preferences: %w", err)
	}
	return record, nil
}
