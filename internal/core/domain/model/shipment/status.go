package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment. It implements a state
// machine with a fixed transition table; any move not listed in the table is
// rejected with a validation error and leaves the shipment unchanged.
//
// State transitions:
//
//	CREATED ──┬──> STORED ──> ASSIGNED ──> IN_TRANSIT ──┬──> ARRIVED ──> READY_FOR_PICKUP ──┬──> DELIVERED ──> CLOSED
//	          │                                         │                                   └──> RETURNED
//	          ├──> ARRIVED   (degraded-mode direct handoff)
//	          └──> CANCELLED                            └──> LOST ──> CLAIM_PENDING ──> CLAIM_PAID
//
// CLOSED, CANCELLED, CLAIM_PAID, and RETURNED are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the initial status stamped at registration.
	Created

	// Stored means the parcel is warehoused at the origin agency.
	Stored

	// Assigned means the parcel has been handed to a specific vehicle/trip.
	Assigned

	// InTransit means the parcel left its origin aboard a departed batch.
	InTransit

	// Arrived means the parcel reached an agency on its route.
	Arrived

	// ReadyForPickup means the destination agency has shelved the parcel
	// and notified the receiver.
	ReadyForPickup

	// Delivered means the receiver collected the parcel.
	Delivered

	// Closed is the terminal status of a successfully delivered shipment.
	Closed

	// Cancelled is the terminal status of a shipment voided before departure.
	Cancelled

	// Lost means the parcel went missing in transit.
	Lost

	// ClaimPending means a loss claim is being processed.
	ClaimPending

	// ClaimPaid is the terminal status of a compensated loss.
	ClaimPaid

	// Returned is the terminal status of a parcel sent back to its sender.
	Returned
)

// transitionTable is the single source of truth for legal status moves.
// The CREATED -> ARRIVED entry is the degraded-mode direct handoff used when
// no batch/vehicle exists yet.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Created:        {Stored, Cancelled, Arrived},
		Stored:         {Assigned, Cancelled},
		Assigned:       {InTransit},
		InTransit:      {Arrived, Lost},
		Arrived:        {ReadyForPickup},
		ReadyForPickup: {Delivered, Returned},
		Delivered:      {Closed},
		Lost:           {ClaimPending},
		ClaimPending:   {ClaimPaid},
		Closed:         {},
		Cancelled:      {},
		ClaimPaid:      {},
		Returned:       {},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Created:        "CREATED",
		Stored:         "STORED",
		Assigned:       "ASSIGNED",
		InTransit:      "IN_TRANSIT",
		Arrived:        "ARRIVED",
		ReadyForPickup: "READY_FOR_PICKUP",
		Delivered:      "DELIVERED",
		Closed:         "CLOSED",
		Cancelled:      "CANCELLED",
		Lost:           "LOST",
		ClaimPending:   "CLAIM_PENDING",
		ClaimPaid:      "CLAIM_PAID",
		Returned:       "RETURNED",
	}
}

// StatusFromString parses the persisted/user-facing representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a shipment status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := transitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted/user-facing name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	targets, ok := transitionTable()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the table allows moving to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move against the table and returns the new
// status, or a validation error naming both states.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("transition %s -> %s is not allowed", s, target))
	}
	return target, nil
}
