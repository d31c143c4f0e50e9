// Package cache stores rendered artifacts between runs.
//
// # Overview
//
// Placing a tiling string is cheap, but PNG and PDF output shells out to
// rsvg-convert and the adjacency graph runs Graphviz. The pipeline therefore
// keys every artifact by a hash of the problem and its render options and
// reuses earlier output when nothing changed.
//
// Two implementations are provided:
//
//   - [FileCache]: zstd-compressed entries under a directory, used by the CLI
//   - [NullCache]: stores nothing, used when caching is disabled
//
// # Keys
//
// A [Keyer] derives keys so that callers never assemble them by hand:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(cache.Hash(problem), cache.ArtifactKeyOpts{Format: "svg"})
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. Expired and
	// unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
