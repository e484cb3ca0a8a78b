package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentHistoryQueryIsNotConstructed = errors.New(
	"GetShipmentHistoryQuery must be created via NewGetShipmentHistoryQuery constructor",
)

// GetShipmentHistoryQuery retrieves the audit trail of one shipment: every
// recorded event, oldest first. This is the tracking view shown at the
// counter.
type GetShipmentHistoryQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentHistoryQuery creates a query for a shipment's audit trail.
func NewGetShipmentHistoryQuery(shipmentID kernel.UUID) (GetShipmentHistoryQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentHistoryQuery{}, err
	}

	return GetShipmentHistoryQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentHistoryQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose history is requested.
func (q GetShipmentHistoryQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// GetShipmentHistoryQueryResponse is one audit fact in the trail.
type GetShipmentHistoryQueryResponse struct {
	ID          kernel.UUID
	EventType   string
	AgencyID    kernel.UUID
	PerformedBy kernel.UUID
	OccurredAt  time.Time
}
