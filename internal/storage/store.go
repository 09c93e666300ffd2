package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("storage: not found")

// Store is a persistent string-keyed key/value store. Writes are last-writer-wins;
// there are no transactions across keys.
type Store interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

type Item struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
