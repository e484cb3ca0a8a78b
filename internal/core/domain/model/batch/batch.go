package batch

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrBatchIsNotConstructed is returned when a Batch instance was not
	// created through NewBatch or RestoreBatch.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")

	// ErrBatchIsEmpty is returned when marking a batch with no members READY.
	ErrBatchIsEmpty = errors.New("batch has no member shipments")
)

// Batch is the aggregate root for a group of shipments traveling together on
// one vehicle/trip. Membership is a set of shipment ids; every member's
// batchId must point back at this batch, which the coordinator's command
// handlers maintain transactionally.
type Batch struct {
	id             kernel.UUID
	originAgencyID kernel.UUID
	tripKey        string
	vehicleID      kernel.UUID
	shipmentIDs    []kernel.UUID
	status         Status
	createdBy      kernel.UUID
	createdAt      time.Time
	departedAt     *time.Time
	closedAt       *time.Time

	isConstructed bool
}

// NewBatch creates an empty batch in DRAFT status for the given trip.
func NewBatch(
	id kernel.UUID,
	originAgencyID kernel.UUID,
	tripKey string,
	vehicleID kernel.UUID,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Batch, error) {
	if err := errors.Join(
		id.Validate(),
		originAgencyID.Validate(),
		vehicleID.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}
	if tripKey == "" {
		return nil, errs.NewValueIsRequiredError("tripKey")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Batch{
		id:             id,
		originAgencyID: originAgencyID,
		tripKey:        tripKey,
		vehicleID:      vehicleID,
		shipmentIDs:    make([]kernel.UUID, 0),
		status:         Draft,
		createdBy:      createdBy,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// RestoreBatch rehydrates a batch from persistence.
func RestoreBatch(
	id kernel.UUID,
	originAgencyID kernel.UUID,
	tripKey string,
	vehicleID kernel.UUID,
	shipmentIDs []kernel.UUID,
	status Status,
	createdBy kernel.UUID,
	createdAt time.Time,
	departedAt *time.Time,
	closedAt *time.Time,
) (*Batch, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, len(shipmentIDs))
	copy(ids, shipmentIDs)

	return &Batch{
		id:             id,
		originAgencyID: originAgencyID,
		tripKey:        tripKey,
		vehicleID:      vehicleID,
		shipmentIDs:    ids,
		status:         status,
		createdBy:      createdBy,
		createdAt:      createdAt,
		departedAt:     departedAt,
		closedAt:       closedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Batch was created through a constructor.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID { return b.id }

// OriginAgencyID returns the agency assembling the batch.
func (b *Batch) OriginAgencyID() kernel.UUID { return b.originAgencyID }

// TripKey returns the deterministic route+time+date key.
func (b *Batch) TripKey() string { return b.tripKey }

// VehicleID returns the vehicle carrying the batch.
func (b *Batch) VehicleID() kernel.UUID { return b.vehicleID }

// ShipmentIDs returns a copy of the member shipment ids.
func (b *Batch) ShipmentIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(b.shipmentIDs))
	copy(ids, b.shipmentIDs)
	return ids
}

// Status returns the current lifecycle state.
func (b *Batch) Status() Status { return b.status }

// CreatedBy returns the operator who assembled the batch.
func (b *Batch) CreatedBy() kernel.UUID { return b.createdBy }

// CreatedAt returns the assembly time.
func (b *Batch) CreatedAt() time.Time { return b.createdAt }

// DepartedAt returns the departure time, nil until DEPARTED.
func (b *Batch) DepartedAt() *time.Time { return b.departedAt }

// ClosedAt returns the closure time, nil until CLOSED.
func (b *Batch) ClosedAt() *time.Time { return b.closedAt }

// Contains reports whether the shipment is a member of this batch.
func (b *Batch) Contains(shipmentID kernel.UUID) bool {
	for _, id := range b.shipmentIDs {
		if id.IsEqual(shipmentID) {
			return true
		}
	}
	return false
}

// AddShipment adds a member. Legal only while DRAFT; adding twice is rejected.
func (b *Batch) AddShipment(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if b.status != Draft {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s batch cannot accept shipments", b.status))
	}
	if b.Contains(shipmentID) {
		return errs.NewValueIsInvalidErrorWithCause("shipmentId",
			fmt.Errorf("shipment %s is already in the batch", shipmentID))
	}

	b.shipmentIDs = append(b.shipmentIDs, shipmentID)
	return nil
}

// RemoveShipment removes a member. Legal only while DRAFT.
func (b *Batch) RemoveShipment(shipmentID kernel.UUID) error {
	if b.status != Draft {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s batch cannot release shipments", b.status))
	}
	for i, id := range b.shipmentIDs {
		if id.IsEqual(shipmentID) {
			b.shipmentIDs = append(b.shipmentIDs[:i], b.shipmentIDs[i+1:]...)
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("shipmentId",
		fmt.Errorf("shipment %s is not in the batch", shipmentID))
}

// MarkReady freezes the manifest. The batch must be DRAFT and non-empty.
func (b *Batch) MarkReady() error {
	if len(b.shipmentIDs) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("shipmentIds", ErrBatchIsEmpty)
	}
	newStatus, err := b.status.MarkReady()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Depart records the vehicle's departure. The member-status precondition
// (every member still CREATED) is enforced by the coordinator over the loaded
// member shipments inside the same transaction.
func (b *Batch) Depart(departedAt time.Time) error {
	newStatus, err := b.status.Depart()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.departedAt = &departedAt
	return nil
}

// Close terminates the batch after the trip. Legal only from DEPARTED.
func (b *Batch) Close(closedAt time.Time) error {
	newStatus, err := b.status.Close()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.closedAt = &closedAt
	return nil
}
