package cache

import (
	"context"
	"errors"
	"time"
)

// Service is the cache-aside accessor. It provides typed get/set/delete over
// a Store without dictating what gets cached; callers implement the
// read-through pattern themselves (check, on miss compute and set).
type Service struct {
	store Store
}

// NewService creates a Service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// SetCache stores value under key with the given expiry, overwriting any
// existing entry. Concurrent writers are not serialized; the last writer
// wins.
func (s *Service) SetCache(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.store.Set(ctx, key, value, ttl)
}

// GetCache returns the live value for key. The second return value is false
// on a miss — expired and never-set are indistinguishable — and a miss is
// never an error. Store connectivity failures propagate as-is.
func (s *Service) GetCache(ctx context.Context, key string) (string, bool, error) {
	value, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// DeleteCache removes the entry for key if present. Deleting an absent key is
// a no-op, so the call is idempotent.
func (s *Service) DeleteCache(ctx context.Context, key string) error {
	return s.store.Del(ctx, key)
}
