// Package cache stores rendered calendars so repeated requests skip the
// render stage. Layouts are cheap and are always rebuilt.
//
// Backends:
//   - [FileCache]: entries as JSON files under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance (HTTP service)
//   - [MongoCache]: a MongoDB collection with a TTL index
//   - [NullCache]: caching disabled
//
// Keys come from a [Keyer] so that callers can scope them with
// [NewScopedKeyer] when several tenants share one backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TTLArtifact is the default lifetime of rendered documents. Draw-to-date
// artifacts are also keyed by the current ISO week, so they roll over on
// their own.
const TTLArtifact = 7 * 24 * time.Hour
