package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var ErrConfirmDepartureCommandIsNotConstructed = errors.New(
	"ConfirmDepartureCommand must be created via NewConfirmDepartureCommand constructor",
)

// ConfirmDepartureCommand represents an agency chief's confirmation that a
// batch has physically left. Every shipment on the batch moves to IN_TRANSIT
// in the same transaction as the batch itself.
type ConfirmDepartureCommand struct { //nolint:recvcheck //using for validation
	batchID     kernel.UUID
	performedBy kernel.UUID
	role        services.Role

	guard guard.ConstructorGuard
}

// NewConfirmDepartureCommand creates a command to confirm a batch departure.
func NewConfirmDepartureCommand(
	batchID kernel.UUID,
	performedBy kernel.UUID,
	role services.Role,
) (ConfirmDepartureCommand, error) {
	cmd := ConfirmDepartureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setPerformedBy(performedBy),
		cmd.setRole(role),
	); err != nil {
		return ConfirmDepartureCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDepartureCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDepartureCommandIsNotConstructed)
}

// BatchID returns the departing batch.
func (c ConfirmDepartureCommand) BatchID() kernel.UUID {
	return c.batchID
}

// PerformedBy returns the user confirming the departure.
func (c ConfirmDepartureCommand) PerformedBy() kernel.UUID {
	return c.performedBy
}

// Role returns the caller's role.
func (c ConfirmDepartureCommand) Role() services.Role {
	return c.role
}

func (c *ConfirmDepartureCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *ConfirmDepartureCommand) setPerformedBy(performedBy kernel.UUID) error {
	if err := performedBy.Validate(); err != nil {
		return err
	}

	c.performedBy = performedBy
	return nil
}

func (c *ConfirmDepartureCommand) setRole(role services.Role) error {
	if role == "" {
		return ErrRoleIsRequired
	}

	c.role = role
	return nil
}
