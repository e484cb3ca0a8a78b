package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
)

// CreateBatchCommandHandler handles dispatch batch creation.
type CreateBatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewCreateBatchCommandHandler creates a handler for batch creation.
func NewCreateBatchCommandHandler(uowFactory BatchUoWFactory) CreateBatchCommandHandler {
	return CreateBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create batch command.
func (h *CreateBatchCommandHandler) Handle(ctx context.Context, cmd CreateBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	tripKey, err := kernel.NewTripKey(cmd.RouteCode(), cmd.DepartureTime(), cmd.TripDate())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := batch.NewBatch(
		cmd.BatchID(),
		cmd.OriginAgencyID(),
		tripKey,
		cmd.VehicleID(),
		cmd.CreatedBy(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.BatchRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
