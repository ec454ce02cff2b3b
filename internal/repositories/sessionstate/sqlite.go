package sessionstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shoplens/shoplens/internal/common"
	"github.com/shoplens/shoplens/internal/dbx"
)

// SQLiteStore is the durable scope, backed by the local device database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: session_state[%s]: %v", common.ErrStorageUnavailable, key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	if err := upsert(ctx, s.db, key, value); err != nil {
		return fmt.Errorf("%w: session_state[%s]: %v", common.ErrStorageUnavailable, key, err)
	}
	return nil
}

// SetMany upserts all entries inside one transaction, so a session artifact
// and its companion flag can never be persisted half-written.
func (s *SQLiteStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for key, value := range entries {
			if err := upsert(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: session_state batch: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

func upsert(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("%w: session_state[%s]: %v", common.ErrStorageUnavailable, key, err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_state`)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}
