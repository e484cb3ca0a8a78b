package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRemoveShipmentFromBatchCommandIsNotConstructed = errors.New(
	"RemoveShipmentFromBatchCommand must be created via NewRemoveShipmentFromBatchCommand constructor",
)

// RemoveShipmentFromBatchCommand represents a request to take a shipment off
// a draft batch before departure.
type RemoveShipmentFromBatchCommand struct { //nolint:recvcheck //using for validation
	batchID    kernel.UUID
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveShipmentFromBatchCommand creates a command to remove a shipment
// from a batch.
func NewRemoveShipmentFromBatchCommand(
	batchID kernel.UUID,
	shipmentID kernel.UUID,
) (RemoveShipmentFromBatchCommand, error) {
	cmd := RemoveShipmentFromBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return RemoveShipmentFromBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveShipmentFromBatchCommand) Validate() error {
	return c.guard.Validate(ErrRemoveShipmentFromBatchCommandIsNotConstructed)
}

// BatchID returns the batch to remove from.
func (c RemoveShipmentFromBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// ShipmentID returns the shipment to remove.
func (c RemoveShipmentFromBatchCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *RemoveShipmentFromBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *RemoveShipmentFromBatchCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
