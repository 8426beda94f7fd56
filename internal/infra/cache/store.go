// Package cache implements the product info cache.
package cache

import (
	"context"
	"time"
)

// Store is a byte-oriented key/value store whose entries expire.
type Store interface {
	// Get returns the value and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
