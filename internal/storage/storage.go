// Package storage opens the registered-user database and applies the
// embedded goose migrations. The default deployment keeps everything in a
// local SQLite file; a server deployment can point the same schema at
// Postgres instead.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/shoplens/shoplens/internal/migrations"
)

// Drivers accepted by Open. The callers are expected to blank-import the
// matching database/sql driver (modernc.org/sqlite or pgx stdlib).
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Each dialect gets its own migration set: the schemas differ (timestamptz
// vs TEXT timestamps) and the session kv table is SQLite-only.
func dialectMigrations(driver string) (string, fs.FS, error) {
	switch driver {
	case DriverSQLite:
		return "sqlite3", migrations.SQLite, nil
	case DriverPostgres:
		return "postgres", migrations.Postgres, nil
	default:
		return "", nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open opens the database behind driver/dsn and migrates it to the latest
// schema. The returned handle is owned by the caller.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	dialect, fsys, err := dialectMigrations(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := runMigrations(ctx, db, dialect, fsys); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB, dialect string, fsys fs.FS) error {
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
