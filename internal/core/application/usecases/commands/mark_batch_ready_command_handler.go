package commands

import (
	"context"
)

// MarkBatchReadyCommandHandler handles freezing a batch manifest.
type MarkBatchReadyCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewMarkBatchReadyCommandHandler creates a handler for marking batches ready.
func NewMarkBatchReadyCommandHandler(uowFactory BatchUoWFactory) MarkBatchReadyCommandHandler {
	return MarkBatchReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark batch ready command.
func (h *MarkBatchReadyCommandHandler) Handle(ctx context.Context, cmd MarkBatchReadyCommand) error {
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

	aggregate, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkReady(); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
