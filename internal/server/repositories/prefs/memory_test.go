package prefs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kanishkgoel/gridboard/internal/common"
	"github.com/kanishkgoel/gridboard/internal/server/models"
)

func TestMemoryRepository_RoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, repo.Initialize(ctx, "alice"))

	got, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(got.Filters))

	require.NoError(t, repo.Put(ctx, "alice", &models.PreferenceRecord{
		Filters: json.RawMessage(`{"preset":{"f":1}}`),
		Session: json.RawMessage(`{"s":2}`),
	}))

	got, err = repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.JSONEq(t, `{"preset":{"f":1}}`, string(got.Filters))
	require.JSONEq(t, `{"s":2}`, string(got.Session))
}
