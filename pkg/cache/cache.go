// Package cache stores rendered layouts and artifacts between runs.
//
// Three backends implement [Cache]: [NullCache] disables caching,
// [FileCache] keeps entries under a local directory (the CLI default) and
// [RedisCache] shares them through a Redis server. Keys are derived by a
// [Keyer] from a content hash of the dataset and the options that affect
// the output, so a changed CSV or flag never returns a stale chart.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}
