// Package access resolves a caller's capability set and gates privileged
// operations. The role x plan mapping itself is pure; this layer adds caching
// so identity lookups stay cheap on hot command paths.
package access

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// Resolver memoizes capability sets per role in an external cache and answers
// authorization checks. On any cache failure it falls back to the pure
// mapping, so a Redis outage degrades to slightly more CPU, never to denied
// requests.
type Resolver struct {
	cache ports.Cache
	plan  services.Plan
	ttl   time.Duration
}

// NewResolver creates a resolver for a company on the given plan.
func NewResolver(cache ports.Cache, plan services.Plan, ttl time.Duration) *Resolver {
	return &Resolver{
		cache: cache,
		plan:  plan,
		ttl:   ttl,
	}
}

// Require returns nil when the role holds the capability, or a
// NotAuthorizedError naming the role and the operation otherwise.
func (r *Resolver) Require(ctx context.Context, role services.Role, capability services.Capability, operation string) error {
	caps := r.resolve(ctx, role)
	if !caps.Has(capability) {
		return errs.NewNotAuthorizedError(string(role), operation)
	}
	return nil
}

func (r *Resolver) resolve(ctx context.Context, role services.Role) services.CapabilitySet {
	key := cacheKey(role, r.plan)

	if cached, ok, err := r.cache.Get(ctx, key); err == nil && ok {
		if caps, decodeErr := decode(cached); decodeErr == nil {
			return caps
		}
	}

	caps := services.CapabilitiesFor(role, r.plan)
	_ = r.cache.Set(ctx, key, encode(caps), r.ttl)
	return caps
}

func cacheKey(role services.Role, plan services.Plan) string {
	return fmt.Sprintf("access:caps:%s:%s", role, plan)
}

func encode(caps services.CapabilitySet) string {
	parts := make([]string, 0, len(caps))
	for c := range caps {
		parts = append(parts, strconv.Itoa(int(c)))
	}
	return strings.Join(parts, ",")
}

func decode(s string) (services.CapabilitySet, error) {
	caps := services.CapabilitySet{}
	if s == "" {
		return caps, nil
	}
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		caps[services.Capability(n)] = struct{}{}
	}
	return caps, nil
}
