// Package eventrepo provides data transfer objects and mapping functions for
// the append-only shipment audit log.
package eventrepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// EventDTO represents the database structure for persisting shipment audit
// events.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	EventType   string
	AgencyID    uuid.UUID `gorm:"type:uuid"`
	PerformedBy uuid.UUID `gorm:"type:uuid"`
	OccurredAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for shipment events.
func (EventDTO) TableName() string {
	return "shipment_events"
}

func fromDomain(event shipment.Event) EventDTO {
	return EventDTO{
		ID:          event.ID().Bytes(),
		ShipmentID:  event.ShipmentID().Bytes(),
		EventType:   string(event.Type()),
		AgencyID:    event.AgencyID().Bytes(),
		PerformedBy: event.PerformedBy().Bytes(),
		OccurredAt:  event.OccurredAt(),
	}
}

func toDomain(dto EventDTO) (shipment.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return shipment.Event{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return shipment.Event{}, err
	}

	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return shipment.Event{}, err
	}

	performedBy, err := kernel.UUIDFromBytes(dto.PerformedBy[:])
	if err != nil {
		return shipment.Event{}, err
	}

	eventType := shipment.EventType(dto.EventType)
	if err := eventType.Validate(); err != nil {
		return shipment.Event{}, err
	}

	return shipment.RestoreEvent(
		id,
		shipmentID,
		eventType,
		agencyID,
		performedBy,
		dto.OccurredAt,
	), nil
}
