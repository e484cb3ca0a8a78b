package shipment

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrAlreadyInAnotherBatch is returned when assigning a shipment that is
	// already linked to a different batch.
	ErrAlreadyInAnotherBatch = errors.New("shipment is already linked to another batch")
)

// Shipment is the aggregate root for one parcel moving from an origin agency
// to a destination agency.
//
// Invariants:
//   - belongs to at most one batch at a time, and only while still CREATED
//   - currentLocationAgencyID is always an agency on the parcel's route
//   - every status change goes through the transition table, except the batch
//     coordinator's Depart bulk path
//   - the destination-collected amount is only recorded for shipments paid at
//     destination, at pickup time
type Shipment struct {
	id                      kernel.UUID
	reference               string
	originAgencyID          kernel.UUID
	destinationAgencyID     kernel.UUID
	sender                  Party
	receiver                Party
	natureOfGoods           string
	declaredValue           kernel.Money
	insuranceRate           decimal.Decimal
	insuranceAmount         kernel.Money
	transportFee            kernel.Money
	paymentType             PaymentType
	paymentStatus           PaymentStatus
	status                  Status
	currentLocationAgencyID kernel.UUID
	batchID                 *kernel.UUID
	sessionID               *kernel.UUID
	createdBy               kernel.UUID
	createdAt               time.Time
	collectedAtDestination  *kernel.Money

	isConstructed bool
}

// NewShipment creates a shipment in CREATED status located at its origin
// agency. The insurance amount is derived from the declared value and the
// insurance rate; it is never hand-entered. The reference may be empty when
// agency numbering is disabled. A shipment paid at origin starts with its fee
// settled; one paid at destination starts pending.
func NewShipment(
	id kernel.UUID,
	reference string,
	originAgencyID kernel.UUID,
	destinationAgencyID kernel.UUID,
	sender Party,
	receiver Party,
	natureOfGoods string,
	declaredValue kernel.Money,
	insuranceRate decimal.Decimal,
	transportFee kernel.Money,
	paymentType PaymentType,
	sessionID *kernel.UUID,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		originAgencyID.Validate(),
		destinationAgencyID.Validate(),
		sender.Validate(),
		receiver.Validate(),
		paymentType.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}
	if originAgencyID.IsEqual(destinationAgencyID) {
		return nil, errs.NewValueIsInvalidErrorWithCause("destinationAgencyId",
			errors.New("destination must differ from origin"))
	}
	if declaredValue.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("declaredValue",
			fmt.Errorf("%s is negative", declaredValue))
	}
	if transportFee.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("transportFee",
			fmt.Errorf("%s is negative", transportFee))
	}
	if insuranceRate.IsNegative() || insuranceRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, errs.NewValueIsOutOfRangeError("insuranceRate", insuranceRate.String(), "0", "1")
	}
	if sessionID != nil {
		if err := sessionID.Validate(); err != nil {
			return nil, err
		}
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	paymentStatus := PaymentPending
	if paymentType == PaymentAtOrigin {
		paymentStatus = PaymentSettled
	}

	return &Shipment{
		id:                      id,
		reference:               reference,
		originAgencyID:          originAgencyID,
		destinationAgencyID:     destinationAgencyID,
		sender:                  sender,
		receiver:                receiver,
		natureOfGoods:           natureOfGoods,
		declaredValue:           declaredValue,
		insuranceRate:           insuranceRate,
		insuranceAmount:         declaredValue.Mul(insuranceRate),
		transportFee:            transportFee,
		paymentType:             paymentType,
		paymentStatus:           paymentStatus,
		status:                  Created,
		currentLocationAgencyID: originAgencyID,
		sessionID:               sessionID,
		createdBy:               createdBy,
		createdAt:               createdAt,
		isConstructed:           true,
	}, nil
}

// RestoreShipment rehydrates a shipment from persistence without re-running
// creation rules. The status must still be a defined lifecycle state.
func RestoreShipment(
	id kernel.UUID,
	reference string,
	originAgencyID kernel.UUID,
	destinationAgencyID kernel.UUID,
	sender Party,
	receiver Party,
	natureOfGoods string,
	declaredValue kernel.Money,
	insuranceRate decimal.Decimal,
	insuranceAmount kernel.Money,
	transportFee kernel.Money,
	paymentType PaymentType,
	paymentStatus PaymentStatus,
	status Status,
	currentLocationAgencyID kernel.UUID,
	batchID *kernel.UUID,
	sessionID *kernel.UUID,
	createdBy kernel.UUID,
	createdAt time.Time,
	collectedAtDestination *kernel.Money,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Shipment{
		id:                      id,
		reference:               reference,
		originAgencyID:          originAgencyID,
		destinationAgencyID:     destinationAgencyID,
		sender:                  sender,
		receiver:                receiver,
		natureOfGoods:           natureOfGoods,
		declaredValue:           declaredValue,
		insuranceRate:           insuranceRate,
		insuranceAmount:         insuranceAmount,
		transportFee:            transportFee,
		paymentType:             paymentType,
		paymentStatus:           paymentStatus,
		status:                  status,
		currentLocationAgencyID: currentLocationAgencyID,
		batchID:                 batchID,
		sessionID:               sessionID,
		createdBy:               createdBy,
		createdAt:               createdAt,
		collectedAtDestination:  collectedAtDestination,
		isConstructed:           true,
	}, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// Reference returns the human-readable reference, empty when numbering was
// disabled at creation.
func (s *Shipment) Reference() string { return s.reference }

// OriginAgencyID returns the agency where the parcel was registered.
func (s *Shipment) OriginAgencyID() kernel.UUID { return s.originAgencyID }

// DestinationAgencyID returns the agency where the parcel is headed.
func (s *Shipment) DestinationAgencyID() kernel.UUID { return s.destinationAgencyID }

// Sender returns the sending party.
func (s *Shipment) Sender() Party { return s.sender }

// Receiver returns the receiving party.
func (s *Shipment) Receiver() Party { return s.receiver }

// NatureOfGoods returns the free-text description of the parcel contents.
func (s *Shipment) NatureOfGoods() string { return s.natureOfGoods }

// DeclaredValue returns the sender-declared value of the goods.
func (s *Shipment) DeclaredValue() kernel.Money { return s.declaredValue }

// InsuranceRate returns the rate applied to the declared value.
func (s *Shipment) InsuranceRate() decimal.Decimal { return s.insuranceRate }

// InsuranceAmount returns declaredValue * insuranceRate, fixed at creation.
func (s *Shipment) InsuranceAmount() kernel.Money { return s.insuranceAmount }

// TransportFee returns the carriage fee.
func (s *Shipment) TransportFee() kernel.Money { return s.transportFee }

// PaymentType returns where the fee is collected.
func (s *Shipment) PaymentType() PaymentType { return s.paymentType }

// PaymentStatus returns whether the fee has been collected.
func (s *Shipment) PaymentStatus() PaymentStatus { return s.paymentStatus }

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status { return s.status }

// CurrentLocationAgencyID returns the agency currently holding the parcel.
func (s *Shipment) CurrentLocationAgencyID() kernel.UUID { return s.currentLocationAgencyID }

// BatchID returns the owning batch, nil when unbatched.
func (s *Shipment) BatchID() *kernel.UUID { return s.batchID }

// SessionID returns the cash session the shipment's fees are reconciled
// under, nil when created outside a session.
func (s *Shipment) SessionID() *kernel.UUID { return s.sessionID }

// CreatedBy returns the agent who registered the shipment.
func (s *Shipment) CreatedBy() kernel.UUID { return s.createdBy }

// CreatedAt returns the registration time.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// CollectedAtDestination returns the amount physically collected at pickup
// for destination-paid shipments, nil otherwise.
func (s *Shipment) CollectedAtDestination() *kernel.Money { return s.collectedAtDestination }

// TotalCharges returns transportFee + insuranceAmount, the shipment's
// contribution to its session's expected amount.
func (s *Shipment) TotalCharges() kernel.Money {
	return s.transportFee.Add(s.insuranceAmount)
}

// TransitionTo moves the shipment to target if the transition table allows it,
// updating the current location to agencyID. The aggregate is left untouched
// on rejection.
func (s *Shipment) TransitionTo(target Status, agencyID kernel.UUID) error {
	newStatus, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}
	if err := agencyID.Validate(); err != nil {
		return err
	}

	s.status = newStatus
	s.currentLocationAgencyID = agencyID
	return nil
}

// AssignToBatch links the shipment to a batch. Legal only while CREATED and
// not already linked to a different batch; re-assigning to the same batch is
// a no-op.
func (s *Shipment) AssignToBatch(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	if s.status != Created {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s shipment cannot join a batch", s.status))
	}
	if s.batchID != nil && !s.batchID.IsEqual(batchID) {
		return errs.NewValueIsInvalidErrorWithCause("batchId", ErrAlreadyInAnotherBatch)
	}

	s.batchID = &batchID
	return nil
}

// RemoveFromBatch unlinks the shipment from the given batch. Legal only while
// CREATED and actually linked to that batch.
func (s *Shipment) RemoveFromBatch(batchID kernel.UUID) error {
	if s.status != Created {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s shipment cannot leave a batch", s.status))
	}
	if s.batchID == nil || !s.batchID.IsEqual(batchID) {
		return errs.NewValueIsInvalidErrorWithCause("batchId",
			errors.New("shipment is not linked to this batch"))
	}

	s.batchID = nil
	return nil
}

// Depart is the batch coordinator's bulk path: it moves a CREATED member of a
// departing batch straight to IN_TRANSIT. Individual shipments reach
// IN_TRANSIT through STORED -> ASSIGNED instead; this shortcut exists only so
// a departure can advance every member in one atomic sweep.
func (s *Shipment) Depart() error {
	if s.batchID == nil {
		return errs.NewValueIsInvalidErrorWithCause("batchId",
			errors.New("shipment is not linked to a batch"))
	}
	if s.status != Created {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s shipment cannot depart with its batch", s.status))
	}

	s.status = InTransit
	return nil
}

// ArriveAt records arrival at the given agency. Legal only while IN_TRANSIT;
// the caller (the batch coordinator's escale handling) is responsible for
// matching the agency against the shipment's destination first.
func (s *Shipment) ArriveAt(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	if s.status != InTransit {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s shipment cannot arrive", s.status))
	}

	s.status = Arrived
	s.currentLocationAgencyID = agencyID
	return nil
}

// ConfirmPickup hands the parcel to the receiver, moving READY_FOR_PICKUP to
// DELIVERED. For destination-paid shipments the amount physically collected
// is mandatory and recorded; for origin-paid shipments it must be absent.
func (s *Shipment) ConfirmPickup(collected *kernel.Money) error {
	if s.status != ReadyForPickup {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s shipment cannot be picked up", s.status))
	}

	if s.paymentType == PaymentAtDestination {
		if collected == nil {
			return errs.NewValueIsRequiredError("collectedAmount")
		}
		if collected.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause("collectedAmount",
				fmt.Errorf("%s is negative", collected))
		}
		s.collectedAtDestination = collected
		s.paymentStatus = PaymentSettled
	} else if collected != nil {
		return errs.NewValueIsInvalidErrorWithCause("collectedAmount",
			errors.New("shipment was already paid at origin"))
	}

	s.status = Delivered
	return nil
}
