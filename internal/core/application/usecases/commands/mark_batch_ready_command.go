package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrMarkBatchReadyCommandIsNotConstructed = errors.New(
	"MarkBatchReadyCommand must be created via NewMarkBatchReadyCommand constructor",
)

// MarkBatchReadyCommand represents a request to freeze a batch's manifest
// ahead of departure. An empty batch cannot be marked ready.
type MarkBatchReadyCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkBatchReadyCommand creates a command to mark a batch ready.
func NewMarkBatchReadyCommand(batchID kernel.UUID) (MarkBatchReadyCommand, error) {
	cmd := MarkBatchReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchID(batchID); err != nil {
		return MarkBatchReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkBatchReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkBatchReadyCommandIsNotConstructed)
}

// BatchID returns the batch to mark ready.
func (c MarkBatchReadyCommand) BatchID() kernel.UUID {
	return c.batchID
}

func (c *MarkBatchReadyCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}
