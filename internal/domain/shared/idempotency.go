package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers keys of requests that were already accepted
type IdempotencyStore interface {
	// Claim records key with a TTL.
	// Returns true if the key was newly claimed, false if it was already present
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release forgets key so that a failed request can be retried
	Release(ctx context.Context, key string) error

	// Close closes the store and releases resources
	Close() error
}
