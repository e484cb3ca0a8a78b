package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/pkg/guard"
)

var ErrRecordLedgerEntryCommandIsNotConstructed = errors.New(
	"RecordLedgerEntryCommand must be created via NewRecordLedgerEntryCommand constructor",
)

// RecordLedgerEntryCommand represents a request to append a cash movement to
// an active session's ledger. Refunds and adjustments may carry negative
// amounts; every other entry type must be non-negative.
type RecordLedgerEntryCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	shipmentID kernel.UUID
	agencyID   kernel.UUID
	agentID    kernel.UUID
	entryType  session.EntryType
	amount     kernel.Money

	guard guard.ConstructorGuard
}

// NewRecordLedgerEntryCommand creates a command to append a ledger entry.
func NewRecordLedgerEntryCommand(
	sessionID kernel.UUID,
	shipmentID kernel.UUID,
	agencyID kernel.UUID,
	agentID kernel.UUID,
	entryType session.EntryType,
	amount kernel.Money,
) (RecordLedgerEntryCommand, error) {
	cmd := RecordLedgerEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setShipmentID(shipmentID),
		cmd.setAgencyID(agencyID),
		cmd.setAgentID(agentID),
		cmd.setEntryType(entryType),
	); err != nil {
		return RecordLedgerEntryCommand{}, err
	}

	cmd.amount = amount

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordLedgerEntryCommand) Validate() error {
	return c.guard.Validate(ErrRecordLedgerEntryCommandIsNotConstructed)
}

// SessionID returns the session the entry belongs to.
func (c RecordLedgerEntryCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// ShipmentID returns the shipment the entry relates to.
func (c RecordLedgerEntryCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// AgencyID returns the agency where the cash moved.
func (c RecordLedgerEntryCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// AgentID returns the agent who handled the cash.
func (c RecordLedgerEntryCommand) AgentID() kernel.UUID {
	return c.agentID
}

// EntryType returns the kind of cash movement.
func (c RecordLedgerEntryCommand) EntryType() session.EntryType {
	return c.entryType
}

// Amount returns the amount of the movement.
func (c RecordLedgerEntryCommand) Amount() kernel.Money {
	return c.amount
}

func (c *RecordLedgerEntryCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *RecordLedgerEntryCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RecordLedgerEntryCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}

	c.agencyID = agencyID
	return nil
}

func (c *RecordLedgerEntryCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *RecordLedgerEntryCommand) setEntryType(entryType session.EntryType) error {
	if err := entryType.Validate(); err != nil {
		return err
	}

	c.entryType = entryType
	return nil
}
