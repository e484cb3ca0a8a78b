package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines persistence operations for the Shipment aggregate.
type ShipmentRepository interface {
	// Add saves a new shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update saves an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by ID.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllInBatch retrieves every shipment linked to the given batch.
	GetAllInBatch(ctx context.Context, batchID kernel.UUID) ([]*shipment.Shipment, error)

	// SumChargesBySession computes SUM(transport_fee + insurance_amount) over
	// the shipments linked to the given session. This is the live query behind
	// a session's expected amount; there is deliberately no accumulator to
	// drift out of sync.
	SumChargesBySession(ctx context.Context, sessionID kernel.UUID) (kernel.Money, error)
}
