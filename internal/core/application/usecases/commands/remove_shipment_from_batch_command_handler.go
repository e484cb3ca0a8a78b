package commands

import (
	"context"
)

// RemoveShipmentFromBatchCommandHandler handles taking a shipment off a
// draft batch.
type RemoveShipmentFromBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewRemoveShipmentFromBatchCommandHandler creates a handler for batch
// membership removal.
func NewRemoveShipmentFromBatchCommandHandler(uowFactory BatchUoWFactory) RemoveShipmentFromBatchCommandHandler {
	return RemoveShipmentFromBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove shipment from batch command.
func (h *RemoveShipmentFromBatchCommandHandler) Handle(ctx context.Context, cmd RemoveShipmentFromBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	batchRepo := uow.BatchRepository()
	shipmentRepo := uow.ShipmentRepository()

	batchAggregate, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	shipmentAggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = shipmentAggregate.RemoveFromBatch(batchAggregate.ID()); err != nil {
		return err
	}

	if err = batchAggregate.RemoveShipment(shipmentAggregate.ID()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shipmentAggregate); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, batchAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
