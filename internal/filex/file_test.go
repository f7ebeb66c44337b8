package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()

	got, err := EnsureDir(filepath.Join(tmp, "user_prefs"))
	require.NoError(t, err)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()

	first, err := EnsureDir(filepath.Join(tmp, "data"))
	require.NoError(t, err)

	second, err := EnsureDir(filepath.Join(tmp, "data"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	name := filepath.Join(tmp, "data")
	require.NoError(t, os.WriteFile(name, []byte("x"), 0o660))

	_, err := EnsureDir(name)
	require.Error(t, err)
}

func TestWriteFileAtomic_WritesAndReplaces(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "users.json")

	require.NoError(t, WriteFileAtomic(path, []byte(`[{"username":"alice"}]`)))
	require.NoError(t, WriteFileAtomic(path, []byte(`[]`)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), got)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files should remain")
}
