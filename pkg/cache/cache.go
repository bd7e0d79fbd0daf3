// Package cache stores rendered artifacts between CLI runs.
//
// # Overview
//
// Rendering a large forest through Graphviz and rsvg-convert is the only
// slow step netforest performs. Artifacts are cached under a key derived
// from the DOT source and the output format, so an unchanged network renders
// instantly the second time:
//
//	key := cache.RenderKey(dot, "svg")
//	svg, err := cache.Fetch(ctx, c, key, 0, func() ([]byte, error) {
//	    return nodelink.RenderSVG(ctx, dot)
//	})
//
// # Implementations
//
//   - [FileCache]: one JSON entry file per key below a directory
//   - [NullCache]: never stores anything, used with --no-cache
//
// Cache hits, misses and writes are reported to [observability.Cache].
//
// [observability.Cache]: github.com/matzehuels/netforest/pkg/observability.Cache
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/netforest/pkg/observability"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Fetch returns the value cached under key, computing and storing it with fn
// on a miss. A failing cache read is treated as a miss and a failing write
// is ignored; only fn's error is returned.
func Fetch(ctx context.Context, c Cache, key string, ttl time.Duration, fn func() ([]byte, error)) ([]byte, error) {
	hooks := observability.Cache()
	kind := keyType(key)

	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		hooks.OnCacheHit(ctx, kind)
		return data, nil
	}
	hooks.OnCacheMiss(ctx, kind)

	data, err := fn()
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, key, data, ttl); err == nil {
		hooks.OnCacheSet(ctx, kind, len(data))
	}
	return data, nil
}
