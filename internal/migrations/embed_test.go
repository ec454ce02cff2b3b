package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, fsys fs.FS) map[string]string {
	t.Helper()
	files := map[string]string{}
	entries, err := fs.ReadDir(fsys, ".")
	require.NoError(t, err)
	for _, e := range entries {
		data, err := fs.ReadFile(fsys, e.Name())
		require.NoError(t, err)
		files[e.Name()] = string(data)
	}
	return files
}

func TestSQLiteSetCoversFullDeviceSchema(t *testing.T) {
	files := readAll(t, SQLite)
	require.Contains(t, files, "00001_create_users.sql")
	require.Contains(t, files, "00002_create_session_state.sql")
}

// The Postgres set must stay valid Postgres DDL: no SQLite-only types, no
// session kv table (session state is device-local), and a native timestamp
// column so created_at scans straight into time.Time.
func TestPostgresSetIsPostgresOnly(t *testing.T) {
	files := readAll(t, Postgres)
	require.Contains(t, files, "00001_create_users.sql")
	require.Len(t, files, 1)

	for name, content := range files {
		require.NotContains(t, strings.ToUpper(content), "BLOB", name)
		require.NotContains(t, content, "session_state", name)
	}
	require.Contains(t, files["00001_create_users.sql"], "timestamptz")
}
