package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
)

// GetShipmentHistoryQueryHandler reads a shipment's audit trail.
type GetShipmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentHistoryQueryHandler creates a handler for shipment history.
func NewGetShipmentHistoryQueryHandler(db *gorm.DB) GetShipmentHistoryQueryHandler {
	return GetShipmentHistoryQueryHandler{db: db}
}

// Handle executes the query. Events come back oldest first; an unknown
// shipment simply yields an empty trail.
func (h GetShipmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentHistoryQuery,
) ([]GetShipmentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetShipmentHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			event_type,
			agency_id,
			performed_by,
			occurred_at
		FROM shipment_events
		WHERE shipment_id = ?
		ORDER BY occurred_at, id
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetShipmentHistoryQueryResponse
		var id, agencyID, performedBy uuid.UUID
		var occurredAt time.Time

		if err = rows.Scan(&id, &event.EventType, &agencyID, &performedBy, &occurredAt); err != nil {
			return nil, err
		}

		if event.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if event.AgencyID, err = kernel.UUIDFromBytes(agencyID[:]); err != nil {
			return nil, err
		}
		if event.PerformedBy, err = kernel.UUIDFromBytes(performedBy[:]); err != nil {
			return nil, err
		}
		event.OccurredAt = occurredAt
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
