package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/finsync/internal/client/migrations"
	"github.com/dmitrijs2005/finsync/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at path and brings
// its schema up to date. The special path ":memory:" is passed through.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		abs, err := filex.EnsureParentDir(path)
		if err != nil {
			return nil, err
		}
		dsn = abs
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}
