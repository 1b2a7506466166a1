// Package cache stores rendered chart artifacts so unchanged specs are
// not re-encoded.
//
// Three backends implement the [Cache] interface:
//   - [FileCache]: directory-backed, for CLI use
//   - [RedisCache]: Redis-backed, for the preview server
//   - [NullCache]: no-op, for tests or when caching is disabled
//
// Keys are derived from content hashes (see [ArtifactKey]), so a spec
// edit naturally invalidates its cached renders.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by [Fetch] when the entry is absent or
// expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the cached bytes for key. The bool reports whether
	// the entry existed and was still fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Fetch returns the cached bytes for key, or ErrCacheMiss when the
// entry is absent or expired. It adapts Get for callers that treat a
// miss as an error.
func Fetch(ctx context.Context, c Cache, key string) ([]byte, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCacheMiss
	}
	return data, nil
}
