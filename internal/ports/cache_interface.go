package ports

import (
	"context"
	"time"
)

// KeyValueStore is the narrow slice of the shared store the rate limiter
// needs: read a key, and write it with a TTL so stale entries self-expire.
// The store does not expose an atomic increment; see ratelimit.StoreLimiter
// for the consequences.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	PutWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
}
