// Package cache provides a small byte cache used to avoid re-decoding card
// PDFs on every run. Decoding a few hundred source documents dominates the
// runtime of a merge, and card archives rarely change between runs.
//
// Keys incorporate the file's path, size and modification time, so a touched
// or replaced card naturally misses and is decoded fresh.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values by key.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// CardKey builds the cache key for a decoded card file from its identity and
// stat info. Any change to size or mtime produces a different key.
func CardKey(path string, size int64, modTime time.Time) string {
	return hashKey("card", path, size, modTime.UnixNano())
}
