package shipment

import (
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// EventType names one audit fact in a shipment's history.
// Event types mirror the lifecycle states, except for DEPARTED which records
// the batch-coordinator bulk move to IN_TRANSIT.
type EventType string

const (
	EventCreated        EventType = "CREATED"
	EventStored         EventType = "STORED"
	EventAssigned       EventType = "ASSIGNED"
	EventDeparted       EventType = "DEPARTED"
	EventArrived        EventType = "ARRIVED"
	EventReadyForPickup EventType = "READY_FOR_PICKUP"
	EventDelivered      EventType = "DELIVERED"
	EventClosed         EventType = "CLOSED"
	EventCancelled      EventType = "CANCELLED"
	EventLost           EventType = "LOST"
	EventClaimPending   EventType = "CLAIM_PENDING"
	EventClaimPaid      EventType = "CLAIM_PAID"
	EventReturned       EventType = "RETURNED"
)

// EventForStatus maps a lifecycle state to the audit event recorded when a
// shipment enters it.
func EventForStatus(s Status) (EventType, error) {
	mapping := map[Status]EventType{
		Created:        EventCreated,
		Stored:         EventStored,
		Assigned:       EventAssigned,
		InTransit:      EventDeparted,
		Arrived:        EventArrived,
		ReadyForPickup: EventReadyForPickup,
		Delivered:      EventDelivered,
		Closed:         EventClosed,
		Cancelled:      EventCancelled,
		Lost:           EventLost,
		ClaimPending:   EventClaimPending,
		ClaimPaid:      EventClaimPaid,
		Returned:       EventReturned,
	}
	et, ok := mapping[s]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("no event type for status %s", s))
	}
	return et, nil
}

// Validate checks the event type against the known set.
func (e EventType) Validate() error {
	switch e {
	case EventCreated, EventStored, EventAssigned, EventDeparted, EventArrived,
		EventReadyForPickup, EventDelivered, EventClosed, EventCancelled,
		EventLost, EventClaimPending, EventClaimPaid, EventReturned:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("eventType",
			fmt.Errorf("%q is not an event type", string(e)))
	}
}

// Event is one append-only audit fact: who did what to which shipment, where,
// and when. Events are never updated or deleted; a shipment's history is
// reconstructed purely by replaying them in order.
type Event struct {
	id          kernel.UUID
	shipmentID  kernel.UUID
	eventType   EventType
	agencyID    kernel.UUID
	performedBy kernel.UUID
	occurredAt  time.Time
}

// NewEvent creates an audit event. All fields are mandatory.
func NewEvent(
	shipmentID kernel.UUID,
	eventType EventType,
	agencyID kernel.UUID,
	performedBy kernel.UUID,
	occurredAt time.Time,
) (Event, error) {
	if err := shipmentID.Validate(); err != nil {
		return Event{}, err
	}
	if err := eventType.Validate(); err != nil {
		return Event{}, err
	}
	if err := agencyID.Validate(); err != nil {
		return Event{}, err
	}
	if err := performedBy.Validate(); err != nil {
		return Event{}, err
	}
	if occurredAt.IsZero() {
		return Event{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return Event{
		id:          kernel.NewUUID(),
		shipmentID:  shipmentID,
		eventType:   eventType,
		agencyID:    agencyID,
		performedBy: performedBy,
		occurredAt:  occurredAt,
	}, nil
}

// RestoreEvent rehydrates an event from persistence.
func RestoreEvent(
	id kernel.UUID,
	shipmentID kernel.UUID,
	eventType EventType,
	agencyID kernel.UUID,
	performedBy kernel.UUID,
	occurredAt time.Time,
) Event {
	return Event{
		id:          id,
		shipmentID:  shipmentID,
		eventType:   eventType,
		agencyID:    agencyID,
		performedBy: performedBy,
		occurredAt:  occurredAt,
	}
}

// ID returns the event's unique identifier.
func (e Event) ID() kernel.UUID { return e.id }

// ShipmentID returns the shipment the event belongs to.
func (e Event) ShipmentID() kernel.UUID { return e.shipmentID }

// Type returns the audit event type.
func (e Event) Type() EventType { return e.eventType }

// AgencyID returns the agency where the action took place.
func (e Event) AgencyID() kernel.UUID { return e.agencyID }

// PerformedBy returns the user who performed the action.
func (e Event) PerformedBy() kernel.UUID { return e.performedBy }

// OccurredAt returns the event timestamp.
func (e Event) OccurredAt() time.Time { return e.occurredAt }
