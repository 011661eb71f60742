// Package cache defines the shared cache abstraction used for tokens,
// presence, profile mirrors and distributed locks. All nodes of a
// deployment point at the same cache, which is what makes presence and
// locking cluster-wide.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist. A miss is
// not a failure: callers fall through to the durable store or treat the
// entity as absent.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the consumer-side contract. The redis implementation is the
// production one; the in-memory implementation backs tests.
type Cache interface {
	// Get returns the value stored at key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key. A zero ttl means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// SetNX stores value at key only if the key does not exist yet,
	// reporting whether the write happened. Used for lock acquisition.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)

	// CompareDelete deletes key only if its current value equals value,
	// reporting whether a delete happened. The check and the delete are
	// atomic. Used for lock release so a holder can never free a lock
	// that was re-acquired by someone else after its ttl expired.
	CompareDelete(ctx context.Context, key, value string) (bool, error)

	// Del removes key. Deleting an absent key is not an error.
	Del(ctx context.Context, key string) error

	// Close releases the underlying connections.
	Close() error
}
