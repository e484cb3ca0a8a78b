package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var ErrCloseBatchCommandIsNotConstructed = errors.New(
	"CloseBatchCommand must be created via NewCloseBatchCommand constructor",
)

// CloseBatchCommand represents an agency chief's request to close a departed
// batch once the trip is over.
type CloseBatchCommand struct { //nolint:recvcheck //using for validation
	batchID     kernel.UUID
	performedBy kernel.UUID
	role        services.Role

	guard guard.ConstructorGuard
}

// NewCloseBatchCommand creates a command to close a batch.
func NewCloseBatchCommand(
	batchID kernel.UUID,
	performedBy kernel.UUID,
	role services.Role,
) (CloseBatchCommand, error) {
	cmd := CloseBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setPerformedBy(performedBy),
		cmd.setRole(role),
	); err != nil {
		return CloseBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseBatchCommand) Validate() error {
	return c.guard.Validate(ErrCloseBatchCommandIsNotConstructed)
}

// BatchID returns the batch to close.
func (c CloseBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// PerformedBy returns the user closing the batch.
func (c CloseBatchCommand) PerformedBy() kernel.UUID {
	return c.performedBy
}

// Role returns the caller's role.
func (c CloseBatchCommand) Role() services.Role {
	return c.role
}

func (c *CloseBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *CloseBatchCommand) setPerformedBy(performedBy kernel.UUID) error {
	if err := performedBy.Validate(); err != nil {
		return err
	}

	c.performedBy = performedBy
	return nil
}

func (c *CloseBatchCommand) setRole(role services.Role) error {
	if role == "" {
		return ErrRoleIsRequired
	}

	c.role = role
	return nil
}
