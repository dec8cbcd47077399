// Package cache stores reference data between requests, in memory or in Redis.
package cache

import (
	"context"
	"time"
)

// Store is a byte oriented key/value cache with per-entry expiry.
type Store interface {
	// Get returns the value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
