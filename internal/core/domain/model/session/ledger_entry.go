package session

import (
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// EntryType classifies one money movement in a session's ledger.
type EntryType string

const (
	EntryTransportFee       EntryType = "TRANSPORT_FEE"
	EntryInsurance          EntryType = "INSURANCE"
	EntryDestinationPayment EntryType = "DESTINATION_PAYMENT"
	EntryRefund             EntryType = "REFUND"
	EntryAdjustment         EntryType = "ADJUSTMENT"
)

// EntryTypeFromString parses the persisted representation.
func EntryTypeFromString(s string) (EntryType, error) {
	et := EntryType(s)
	if err := et.Validate(); err != nil {
		return "", err
	}
	return et, nil
}

// Validate checks the entry type against the known set.
func (e EntryType) Validate() error {
	switch e {
	case EntryTransportFee, EntryInsurance, EntryDestinationPayment, EntryRefund, EntryAdjustment:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("entryType",
			fmt.Errorf("%q is not a ledger entry type", string(e)))
	}
}

// AllowsNegativeAmount reports whether the type may carry an amount below
// zero. Only refunds and adjustments move money out of the drawer.
func (e EntryType) AllowsNegativeAmount() bool {
	return e == EntryRefund || e == EntryAdjustment
}

// LedgerEntry is one money-movement fact tied to a shipment and a session.
// Entries are append-only: the ledger repository exposes no update or delete,
// and session totals are always derived by summation rather than kept in a
// running balance column.
type LedgerEntry struct {
	id         kernel.UUID
	sessionID  kernel.UUID
	shipmentID kernel.UUID
	agencyID   kernel.UUID
	agentID    kernel.UUID
	entryType  EntryType
	amount     kernel.Money
	createdAt  time.Time
}

// NewLedgerEntry creates a ledger entry. The amount must be >= 0 unless the
// type is refund or adjustment.
func NewLedgerEntry(
	sessionID kernel.UUID,
	shipmentID kernel.UUID,
	agencyID kernel.UUID,
	agentID kernel.UUID,
	entryType EntryType,
	amount kernel.Money,
	createdAt time.Time,
) (LedgerEntry, error) {
	if err := sessionID.Validate(); err != nil {
		return LedgerEntry{}, err
	}
	if err := shipmentID.Validate(); err != nil {
		return LedgerEntry{}, err
	}
	if err := agencyID.Validate(); err != nil {
		return LedgerEntry{}, err
	}
	if err := agentID.Validate(); err != nil {
		return LedgerEntry{}, err
	}
	if err := entryType.Validate(); err != nil {
		return LedgerEntry{}, err
	}
	if amount.IsNegative() && !entryType.AllowsNegativeAmount() {
		return LedgerEntry{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s entry cannot be negative", entryType))
	}
	if createdAt.IsZero() {
		return LedgerEntry{}, errs.NewValueIsRequiredError("createdAt")
	}

	return LedgerEntry{
		id:         kernel.NewUUID(),
		sessionID:  sessionID,
		shipmentID: shipmentID,
		agencyID:   agencyID,
		agentID:    agentID,
		entryType:  entryType,
		amount:     amount,
		createdAt:  createdAt,
	}, nil
}

// RestoreLedgerEntry rehydrates an entry from persistence.
func RestoreLedgerEntry(
	id kernel.UUID,
	sessionID kernel.UUID,
	shipmentID kernel.UUID,
	agencyID kernel.UUID,
	agentID kernel.UUID,
	entryType EntryType,
	amount kernel.Money,
	createdAt time.Time,
) LedgerEntry {
	return LedgerEntry{
		id:         id,
		sessionID:  sessionID,
		shipmentID: shipmentID,
		agencyID:   agencyID,
		agentID:    agentID,
		entryType:  entryType,
		amount:     amount,
		createdAt:  createdAt,
	}
}

// ID returns the entry's unique identifier.
func (e LedgerEntry) ID() kernel.UUID { return e.id }

// SessionID returns the owning session.
func (e LedgerEntry) SessionID() kernel.UUID { return e.sessionID }

// ShipmentID returns the shipment the movement relates to.
func (e LedgerEntry) ShipmentID() kernel.UUID { return e.shipmentID }

// AgencyID returns the agency where the money moved.
func (e LedgerEntry) AgencyID() kernel.UUID { return e.agencyID }

// AgentID returns the agent who handled the money.
func (e LedgerEntry) AgentID() kernel.UUID { return e.agentID }

// Type returns the movement classification.
func (e LedgerEntry) Type() EntryType { return e.entryType }

// Amount returns the movement amount.
func (e LedgerEntry) Amount() kernel.Money { return e.amount }

// CreatedAt returns the recording time.
func (e LedgerEntry) CreatedAt() time.Time { return e.createdAt }
