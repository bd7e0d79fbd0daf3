package cache

import (
	"context"
	"time"

	"github.com/matzehuels/netforest/pkg/errors"
)

// NullCache stands in for the render cache while it is switched off, either
// by --no-cache or because no cache directory is usable. Every render goes
// through Graphviz again.
//
// Set refuses to store so that [Fetch] never reports a write that did not
// happen.
type NullCache struct {
	reason string
}

// NewNullCache returns a disabled cache. reason says why caching is off.
func NewNullCache(reason string) *NullCache {
	return &NullCache{reason: reason}
}

// Reason returns why the render cache is disabled.
func (c *NullCache) Reason() string { return c.reason }

// Get always misses.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set fails with [errors.ErrCodeUnsupported].
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return errors.New(errors.ErrCodeUnsupported, "render cache disabled: %s", c.reason)
}

func (c *NullCache) Delete(ctx context.Context, key string) error { return nil }

func (c *NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
