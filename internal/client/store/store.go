package store

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/finsync/internal/client/repositories/storage"
	"github.com/dmitrijs2005/finsync/internal/dbx"
)

// Store is the durable key-value contract used by the rest of the client.
// Get reports absence through ok=false and never fails for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	// Clear removes every key, preferences included.
	Clear(ctx context.Context) error
	// All returns every stored pair.
	All(ctx context.Context) (map[string]string, error)
	// Commit sets every pair of values and removes every key of removals in
	// one transaction: either all of it becomes visible or none of it.
	Commit(ctx context.Context, values map[string]string, removals ...string) error
}

// SQLiteStore implements Store on top of the local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) repo() storage.Repository {
	return storage.NewSQLiteRepository(s.db)
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.repo().Get(ctx, key)
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	return s.repo().Set(ctx, key, value)
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	return s.repo().Delete(ctx, key)
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.repo().Clear(ctx)
}

func (s *SQLiteStore) All(ctx context.Context) (map[string]string, error) {
	return s.repo().List(ctx)
}

func (s *SQLiteStore) Commit(ctx context.Context, values map[string]string, removals ...string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		for k, v := range values {
			if err := repo.Set(ctx, k, v); err != nil {
				return err
			}
		}
		for _, k := range removals {
			if err := repo.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
}
