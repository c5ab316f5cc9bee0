package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// OpenPostgres connects to the hosted Postgres store. The driver enforces the
// transport-level latency budget; call sites never improvise timeouts.
func OpenPostgres(dsn string) (*bun.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("store: postgres DSN is required")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New()), nil
}

// OpenSQLite opens a local SQLite database, used for development and tests.
func OpenSQLite(dsn string) (*bun.DB, error) {
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	db.SetMaxOpenConns(1)
	return db, nil
}
