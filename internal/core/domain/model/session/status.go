package session

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a cash session.
//
// State transitions:
//
//	PENDING ──> ACTIVE ──> CLOSED ──> VALIDATED
//
// VALIDATED is terminal; sessions are never deleted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending means the agent requested a session that awaits accountant
	// activation.
	Pending

	// Active means the agent may register shipments and ledger entries.
	Active

	// Closed means the agent ended the period and the expected amount has
	// been computed; no further ledger entries are accepted.
	Closed

	// Validated means the accountant reconciled the session against the
	// physically counted cash.
	Validated
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Active:    "ACTIVE",
		Closed:    "CLOSED",
		Validated: "VALIDATED",
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
		fmt.Errorf("%q is not a session status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s != Pending && s != Active && s != Closed && s != Validated {
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

// IsOpen reports whether the session is in a non-terminal working state
// (PENDING or ACTIVE). The one-open-session-per-agent invariant is defined
// over this predicate.
func (s Status) IsOpen() bool {
	return s == Pending || s == Active
}

// Activate transitions PENDING -> ACTIVE.
func (s Status) Activate() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s session cannot be activated", s))
	}
	return Active, nil
}

// Close transitions ACTIVE -> CLOSED.
func (s Status) Close() (Status, error) {
	if s != Active {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s session cannot be closed", s))
	}
	return Closed, nil
}

// MarkValidated transitions CLOSED -> VALIDATED.
func (s Status) MarkValidated() (Status, error) {
	if s != Closed {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s session cannot be validated", s))
	}
	return Validated, nil
}
