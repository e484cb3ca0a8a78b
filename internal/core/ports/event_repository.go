package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// EventRepository defines persistence for the shipment audit log. Like the
// ledger it is append-only by construction: no update or delete exists, and
// history is reconstructed purely by replaying events in order.
type EventRepository interface {
	// Add appends one audit event.
	Add(ctx context.Context, event shipment.Event) error

	// GetAllByShipment retrieves a shipment's events, oldest first.
	GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]shipment.Event, error)
}
