package cache

import (
	"context"
	"time"
)

// Cache is the contract the repositories program against. The production
// implementation lives in internal/infrastructure/cache (Redis); tests use
// in-memory fakes.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// found=false is a cache miss, dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
