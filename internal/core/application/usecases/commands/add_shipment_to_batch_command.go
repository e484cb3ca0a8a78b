package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAddShipmentToBatchCommandIsNotConstructed = errors.New(
	"AddShipmentToBatchCommand must be created via NewAddShipmentToBatchCommand constructor",
)

// AddShipmentToBatchCommand represents a request to place a shipment on a
// draft batch. Membership is written on both sides in one transaction: the
// batch gains the shipment ID and the shipment records its batch.
type AddShipmentToBatchCommand struct { //nolint:recvcheck //using for validation
	batchID    kernel.UUID
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddShipmentToBatchCommand creates a command to add a shipment to a batch.
func NewAddShipmentToBatchCommand(
	batchID kernel.UUID,
	shipmentID kernel.UUID,
) (AddShipmentToBatchCommand, error) {
	cmd := AddShipmentToBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return AddShipmentToBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddShipmentToBatchCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentToBatchCommandIsNotConstructed)
}

// BatchID returns the target batch.
func (c AddShipmentToBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// ShipmentID returns the shipment to add.
func (c AddShipmentToBatchCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *AddShipmentToBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *AddShipmentToBatchCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
