package sessionstate

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shoplens/shoplens/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessionstate_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session_state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

// Both scope stores must satisfy the same contract.
func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"sqlite": NewSQLiteStore(setupDB(t)),
		"memory": NewMemoryStore(),
	}
}

func TestStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := s.Get(ctx, "user")
			require.NoError(t, err)
			require.Nil(t, got, "absent key reads as nil")

			require.NoError(t, s.Set(ctx, "user", []byte(`{"id":"1"}`)))
			got, err = s.Get(ctx, "user")
			require.NoError(t, err)
			require.Equal(t, []byte(`{"id":"1"}`), got)

			// Set overwrites.
			require.NoError(t, s.Set(ctx, "user", []byte(`{"id":"2"}`)))
			got, err = s.Get(ctx, "user")
			require.NoError(t, err)
			require.Equal(t, []byte(`{"id":"2"}`), got)

			require.NoError(t, s.Delete(ctx, "user"))
			got, err = s.Get(ctx, "user")
			require.NoError(t, err)
			require.Nil(t, got)

			// Delete is idempotent.
			require.NoError(t, s.Delete(ctx, "user"))
		})
	}
}

func TestStoreSetMany(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SetMany(ctx, map[string][]byte{
				"user":       []byte("token"),
				"rememberMe": []byte("true"),
			}))

			got, err := s.Get(ctx, "user")
			require.NoError(t, err)
			require.Equal(t, []byte("token"), got)

			got, err = s.Get(ctx, "rememberMe")
			require.NoError(t, err)
			require.Equal(t, []byte("true"), got)

			// SetMany upserts.
			require.NoError(t, s.SetMany(ctx, map[string][]byte{"user": []byte("token2")}))
			got, err = s.Get(ctx, "user")
			require.NoError(t, err)
			require.Equal(t, []byte("token2"), got)
		})
	}
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "user", []byte("u")))
			require.NoError(t, s.Set(ctx, "rememberMe", []byte("true")))
			require.NoError(t, s.Clear(ctx))

			for _, key := range []string{"user", "rememberMe"} {
				got, err := s.Get(ctx, key)
				require.NoError(t, err)
				require.Nil(t, got)
			}
		})
	}
}

func TestSQLiteStoreUnavailable(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	require.NoError(t, db.Close())

	_, err := s.Get(context.Background(), "user")
	require.ErrorIs(t, err, common.ErrStorageUnavailable)
	require.ErrorIs(t, s.Set(context.Background(), "user", []byte("x")), common.ErrStorageUnavailable)
	require.ErrorIs(t, s.SetMany(context.Background(), map[string][]byte{"user": []byte("x")}), common.ErrStorageUnavailable)
}
