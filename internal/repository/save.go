package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by SaveStore.Get when no record exists for the key.
var ErrNotFound = errors.New("save record not found")

// SaveStore defines the key-value persistence used for game save records.
// Payloads are opaque to the store.
type SaveStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
}
