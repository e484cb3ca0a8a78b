package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents the receiver collecting a shipment at the
// destination counter. For destination-paid shipments the collected amount
// is mandatory and is posted to the receiving agent's session ledger; for
// origin-paid shipments no cash changes hands and both amount and session
// must be absent.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	shipmentID      kernel.UUID
	agencyID        kernel.UUID
	performedBy     kernel.UUID
	collectedAmount *kernel.Money
	sessionID       *kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command to confirm a pickup.
func NewConfirmPickupCommand(
	shipmentID kernel.UUID,
	agencyID kernel.UUID,
	performedBy kernel.UUID,
	collectedAmount *kernel.Money,
	sessionID *kernel.UUID,
) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setAgencyID(agencyID),
		cmd.setPerformedBy(performedBy),
		cmd.setCollection(collectedAmount, sessionID),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// ShipmentID returns the shipment being collected.
func (c ConfirmPickupCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// AgencyID returns the destination agency.
func (c ConfirmPickupCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// PerformedBy returns the agent handing over the shipment.
func (c ConfirmPickupCommand) PerformedBy() kernel.UUID {
	return c.performedBy
}

// CollectedAmount returns the cash collected, nil for origin-paid shipments.
func (c ConfirmPickupCommand) CollectedAmount() *kernel.Money {
	return c.collectedAmount
}

// SessionID returns the receiving agent's cash session, nil for origin-paid
// shipments.
func (c ConfirmPickupCommand) SessionID() *kernel.UUID {
	return c.sessionID
}

func (c *ConfirmPickupCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ConfirmPickupCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}

	c.agencyID = agencyID
	return nil
}

func (c *ConfirmPickupCommand) setPerformedBy(performedBy kernel.UUID) error {
	if err := performedBy.Validate(); err != nil {
		return err
	}

	c.performedBy = performedBy
	return nil
}

func (c *ConfirmPickupCommand) setCollection(collectedAmount *kernel.Money, sessionID *kernel.UUID) error {
	if collectedAmount == nil {
		if sessionID != nil {
			return errs.NewValueIsInvalidError("sessionId")
		}
		return nil
	}

	if sessionID == nil {
		return errs.NewValueIsRequiredError("sessionId")
	}
	if err := sessionID.Validate(); err != nil {
		return err
	}

	amount := *collectedAmount
	id := *sessionID
	c.collectedAmount = &amount
	c.sessionID = &id
	return nil
}
