package cache

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for a key the store does not hold.
var ErrNotFound = errors.New("key not found")

// Store is a minimal byte-oriented key-value cache. The upload round trip is
// its only consumer; no transactional or consistency guarantees are assumed.
type Store interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Close() error
}
