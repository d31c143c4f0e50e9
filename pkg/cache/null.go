package cache

import (
	"context"
	"time"
)

var _ Cache = NullCache{}

// NullCache backs --no-cache runs and runners built without a cache: every
// lookup misses, so each artifact is rendered fresh, and writes are dropped.
type NullCache struct{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }
