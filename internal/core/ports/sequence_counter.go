package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// SequenceCounter mints monotonically increasing per-agency sequences used to
// build human-readable shipment references. Next must be atomic: two callers
// can never observe the same value for one agency, even across concurrent
// transactions.
type SequenceCounter interface {
	// Next increments and returns the agency's counter.
	Next(ctx context.Context, agencyID kernel.UUID) (int64, error)
}
