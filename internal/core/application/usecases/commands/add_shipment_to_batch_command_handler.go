package commands

import (
	"context"

	"logistics/internal/core/domain/model/batch"
)

// AddShipmentToBatchCommandHandler handles adding a shipment to a draft
// batch. Re-adding a shipment already on a draft batch is a no-op; once the
// batch has left DRAFT, any add is rejected.
type AddShipmentToBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewAddShipmentToBatchCommandHandler creates a handler for batch membership.
func NewAddShipmentToBatchCommandHandler(uowFactory BatchUoWFactory) AddShipmentToBatchCommandHandler {
	return AddShipmentToBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add shipment to batch command. Both sides of the
// membership are updated in the same transaction.
func (h *AddShipmentToBatchCommandHandler) Handle(ctx context.Context, cmd AddShipmentToBatchCommand) error {
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

	if batchAggregate.Status() == batch.Draft && batchAggregate.Contains(shipmentAggregate.ID()) {
		return nil
	}

	if err = batchAggregate.AddShipment(shipmentAggregate.ID()); err != nil {
		return err
	}

	if err = shipmentAggregate.AssignToBatch(batchAggregate.ID()); err != nil {
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
