// Package storage is the SQL repository behind the client's durable
// key-value store.
package storage

import (
	"context"
)

// Repository reads and writes string values by key.
//
// Get returns ("", false, nil) for a missing key; a missing key is never an
// error. Delete of a missing key is a no-op.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
