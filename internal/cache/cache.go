// Package cache defines the descriptor cache used to reuse computed
// tile layer configurations across render requests.
package cache

import (
	"context"
	"time"
)

type Interface interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	// DelPrefix removes every key under prefix and reports how many
	// were dropped. Used by collection invalidation.
	DelPrefix(ctx context.Context, prefix string) (int, error)
}
