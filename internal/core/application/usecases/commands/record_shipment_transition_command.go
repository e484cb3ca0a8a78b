package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var ErrRecordShipmentTransitionCommandIsNotConstructed = errors.New(
	"RecordShipmentTransitionCommand must be created via NewRecordShipmentTransitionCommand constructor",
)

// RecordShipmentTransitionCommand represents a request to move a shipment to
// a new lifecycle state through the transition table. The agency is where
// the transition physically happened and becomes the shipment's current
// location.
type RecordShipmentTransitionCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	target      shipment.Status
	agencyID    kernel.UUID
	performedBy kernel.UUID
	role        services.Role

	guard guard.ConstructorGuard
}

// NewRecordShipmentTransitionCommand creates a command to record a lifecycle
// transition.
func NewRecordShipmentTransitionCommand(
	shipmentID kernel.UUID,
	target shipment.Status,
	agencyID kernel.UUID,
	performedBy kernel.UUID,
	role services.Role,
) (RecordShipmentTransitionCommand, error) {
	cmd := RecordShipmentTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTarget(target),
		cmd.setAgencyID(agencyID),
		cmd.setPerformedBy(performedBy),
		cmd.setRole(role),
	); err != nil {
		return RecordShipmentTransitionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordShipmentTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRecordShipmentTransitionCommandIsNotConstructed)
}

// ShipmentID returns the shipment to transition.
func (c RecordShipmentTransitionCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Target returns the requested lifecycle state.
func (c RecordShipmentTransitionCommand) Target() shipment.Status {
	return c.target
}

// AgencyID returns the agency where the transition happened.
func (c RecordShipmentTransitionCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// PerformedBy returns the user recording the transition.
func (c RecordShipmentTransitionCommand) PerformedBy() kernel.UUID {
	return c.performedBy
}

// Role returns the caller's role.
func (c RecordShipmentTransitionCommand) Role() services.Role {
	return c.role
}

func (c *RecordShipmentTransitionCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RecordShipmentTransitionCommand) setTarget(target shipment.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *RecordShipmentTransitionCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}

	c.agencyID = agencyID
	return nil
}

func (c *RecordShipmentTransitionCommand) setPerformedBy(performedBy kernel.UUID) error {
	if err := performedBy.Validate(); err != nil {
		return err
	}

	c.performedBy = performedBy
	return nil
}

func (c *RecordShipmentTransitionCommand) setRole(role services.Role) error {
	if role == "" {
		return ErrRoleIsRequired
	}

	c.role = role
	return nil
}
