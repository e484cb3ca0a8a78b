package ports

import (
	"context"
	"time"
)

// Cache is an explicit TTL cache abstraction, injected as a dependency so the
// invalidation contract is defined and testable rather than hidden in a
// module-level variable. The access resolver uses it to memoize capability
// sets per role x plan.
type Cache interface {
	// Get returns the cached value and whether the key was present and fresh.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value; after ttl elapses the key reads as absent.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
