package prefs

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kanishkgoel/gridboard/internal/common"
	"github.com/kanishkgoel/gridboard/internal/server/models"
)

func newFileRepo(t *testing.T) *FileRepository {
	t.Helper()
	repo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)
	return repo
}

func TestFileRepository_GetMissing(t *testing.T) {
	repo := newFileRepo(t)

	_, err := repo.Get(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFileRepository_InitializeSeedsEmptyRecord(t *testing.T) {
	repo := newFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Initialize(ctx, "alice"))

	got, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(got.Filters))
	require.JSONEq(t, `{}`, string(got.Session))
	require.Nil(t, got.Columns)
}

func TestFileRepository_PutReplacesWholeRecord(t *testing.T) {
	repo := newFileRepo(t)
	ctx := context.Background()

	first := &models.PreferenceRecord{
		Filters: json.RawMessage(`{"f":1}`),
		Session: json.RawMessage(`{"s":2}`),
	}
	require.NoError(t, repo.Put(ctx, "alice", first))

	second := &models.PreferenceRecord{
		Filters: json.RawMessage(`{"g":2}`),
		Session: json.RawMessage(`{}`),
	}
	require.NoError(t, repo.Put(ctx, "alice", second))

	got, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.JSONEq(t, `{"g":2}`, string(got.Filters), "old filters must not survive a save")
	require.JSONEq(t, `{}`, string(got.Session))
}

func TestFileRepository_PutIsPerUsername(t *testing.T) {
	repo := newFileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "alice", &models.PreferenceRecord{
		Filters: json.RawMessage(`{"a":1}`), Session: json.RawMessage(`{}`),
	}))
	require.NoError(t, repo.Put(ctx, "bob", &models.PreferenceRecord{
		Filters: json.RawMessage(`{"b":2}`), Session: json.RawMessage(`{}`),
	}))

	alice, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	require.JSONEq(t, `{"a":1}`, string(alice.Filters))

	bob, err := repo.Get(ctx, "bob")
	require.NoError(t, err)
	require.JSONEq(t, `{"b":2}`, string(bob.Filters))
}

func TestFileRepository_ConcurrentPutsEndWithOneIntactPayload(t *testing.T) {
	repo := newFileRepo(t)
	ctx := context.Background()

	payloads := []string{`{"f":1}`, `{"g":2}`}

	var wg sync.WaitGroup
	for _, p := range payloads {
		wg.Add(1)
		go func(filters string) {
			defer wg.Done()
			_ = repo.Put(ctx, "alice", &models.PreferenceRecord{
				Filters: json.RawMessage(filters),
				Session: json.RawMessage(`{}`),
			})
		}(p)
	}
	wg.Wait()

	got, err := repo.Get(ctx, "alice")
	require.NoError(t, err)

	// last write wins: the result is exactly one of the submitted payloads,
	// never an interleaved mix
	f := string(got.Filters)
	require.Contains(t, []string{`{"f":1}`, `{"g":2}`}, f)
}
