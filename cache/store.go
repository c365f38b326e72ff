// Package cache provides the cache-aside building blocks: a key-value Store
// contract, its redis implementation, a typed accessor over it, and the items
// endpoint demonstrating the read-through pattern.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss signals that no live entry exists for a key — either never set
// or expired; the two are indistinguishable. A miss is a normal outcome, not
// a store failure.
var ErrCacheMiss = errors.New("cache: key not found")

// Store is the key-value store contract the accessor consumes. Get returns
// ErrCacheMiss for an absent key; any other error is a connectivity failure
// and propagates untranslated. Del is idempotent.
type Store interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}
