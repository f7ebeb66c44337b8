package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kanishkgoel/gridboard/internal/common"
	"github.com/kanishkgoel/gridboard/internal/server/models"
)

func TestRegister_SendsBodyAndAcceptsCreated(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("User registered successfully."))
	}))
	defer ts.Close()

	c := New(ts.URL)
	require.NoError(t, c.Register(context.Background(), "alice", "alice@example.com", "pw"))

	require.Equal(t, "/register", gotPath)
	require.Equal(t, "alice", gotBody["username"])
	require.Equal(t, "alice@example.com", gotBody["email"])
	require.Equal(t, "pw", gotBody["password"])
}

func TestRegister_ConflictMapsToAlreadyExists(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "User already exists.", http.StatusBadRequest)
	}))
	defer ts.Close()

	err := New(ts.URL).Register(context.Background(), "alice", "a@example.com", "pw")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestLogin_UnauthorizedMapsToSentinel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid credentials.", http.StatusUnauthorized)
	}))
	defer ts.Close()

	err := New(ts.URL).Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestGetPreferences_DecodesRecord(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/getPreferences", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"filters":{"preset":{"f":1}},"session":{"s":2}}`))
	}))
	defer ts.Close()

	record, err := New(ts.URL).GetPreferences(context.Background(), "alice")
	require.NoError(t, err)
	require.JSONEq(t, `{"preset":{"f":1}}`, string(record.Filters))
	require.JSONEq(t, `{"s":2}`, string(record.Session))
}

func TestGetPreferences_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "User not found.", http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := New(ts.URL).GetPreferences(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSavePreferences_SendsFullRecord(t *testing.T) {
	var gotBody map[string]json.RawMessage

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/savePreferences", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte("Preferences saved successfully."))
	}))
	defer ts.Close()

	record := &models.PreferenceRecord{
		Filters: json.RawMessage(`{"f":1}`),
		Session: json.RawMessage(`{"s":2}`),
	}
	require.NoError(t, New(ts.URL).SavePreferences(context.Background(), "alice", record))

	require.JSONEq(t, `"alice"`, string(gotBody["username"]))
	require.JSONEq(t, `{"f":1}`, string(gotBody["filters"]))
	require.JSONEq(t, `{"s":2}`, string(gotBody["session"]))
}

func TestGetTable_ReturnsRawBytes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/getTable", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`[{"Full Name":"Alice"}]`))
	}))
	defer ts.Close()

	data, err := New(ts.URL).GetTable(context.Background())
	require.NoError(t, err)
	require.JSONEq(t, `[{"Full Name":"Alice"}]`, string(data))
}

func TestGetTable_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := New(ts.URL).GetTable(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}
