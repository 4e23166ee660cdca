package history

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KV.Get for absent keys.
var ErrKeyNotFound = errors.New("key not found")

// KV is the persistence contract the history store runs on. The
// get/set/delete surface is deliberately minimal so any backing store can
// be swapped in.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
