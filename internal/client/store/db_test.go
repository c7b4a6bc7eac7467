package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesFileAndSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "finsync.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.PingContext(ctx))
	require.True(t, tableExists(t, db, "goose_db_version"))
	require.True(t, tableExists(t, db, "local_storage"))
}

func TestInitDatabase_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "finsync.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Set(ctx, KeyToken, "t1"))
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	v, ok, err := NewSQLiteStore(db).Get(ctx, KeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "t1", v)
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
}
