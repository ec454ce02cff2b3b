// Package migrations embeds the goose migrations, one directory per SQL
// dialect. The SQLite set covers the full local device database (users plus
// session kv); the Postgres set covers only the users table, since durable
// session state always stays on the device.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedded embed.FS

var (
	SQLite   = mustSub("sqlite")
	Postgres = mustSub("postgres")
)

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(embedded, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
