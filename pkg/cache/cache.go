// Package cache provides the in-process artifact cache used by the gallery.
//
// Rendered artifacts (SVG galleries, JSON documents, Graphviz trees) are
// deterministic functions of the board width, output format and style, so
// they are cached by a key derived from those inputs. Entries live only as
// long as the process; nothing is written to disk or shared between runs.
//
// Two implementations are provided:
//   - [MemoryCache]: bounded, least-recently-used eviction, optional TTL
//   - [NullCache]: stores nothing, used when caching is disabled
//
// The enumeration memo in package tiling is separate from this cache and is
// never evicted.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads by key.
type Cache interface {
	// Get returns the stored data and true on a hit.
	// A miss is reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means the entry never expires
	// (it may still be evicted for capacity).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// TTLs for cached artifacts. Artifacts only change when the binary does,
// so they never expire on their own.
const (
	TTLArtifact time.Duration = 0
)

// Key types reported to observability hooks.
const (
	KeyTypeArtifact = "artifact"
)
