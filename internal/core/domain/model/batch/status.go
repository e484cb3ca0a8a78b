package batch

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment batch.
//
// State transitions:
//
//	DRAFT ──> READY ──> DEPARTED ──> CLOSED
//
// CLOSED is terminal; batches are never deleted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status; membership is editable.
	Draft

	// Ready means the manifest is frozen and the batch awaits departure.
	Ready

	// Departed means the vehicle left and every member is in transit.
	Departed

	// Closed is the terminal status after the trip is reconciled.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Draft:    "DRAFT",
		Ready:    "READY",
		Departed: "DEPARTED",
		Closed:   "CLOSED",
	}
}

// StatusFromString parses the persisted representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a batch status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s != Draft && s != Ready && s != Departed && s != Closed {
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

// MarkReady transitions DRAFT -> READY.
func (s Status) MarkReady() (Status, error) {
	if s != Draft {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s batch cannot be marked ready", s))
	}
	return Ready, nil
}

// Depart transitions READY -> DEPARTED.
func (s Status) Depart() (Status, error) {
	if s != Ready {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s batch cannot depart", s))
	}
	return Departed, nil
}

// Close transitions DEPARTED -> CLOSED.
func (s Status) Close() (Status, error) {
	if s != Departed {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s batch cannot be closed", s))
	}
	return Closed, nil
}
