package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/services"
)

// CloseBatchCommandHandler handles closing a departed batch.
type CloseBatchCommandHandler struct {
	uowFactory BatchUoWFactory
	checker    CapabilityChecker
}

// NewCloseBatchCommandHandler creates a handler for batch closure.
func NewCloseBatchCommandHandler(
	uowFactory BatchUoWFactory,
	checker CapabilityChecker,
) CloseBatchCommandHandler {
	return CloseBatchCommandHandler{
		uowFactory: uowFactory,
		checker:    checker,
	}
}

// Handle processes the close batch command. The capability check runs before
// any aggregate is read.
func (h *CloseBatchCommandHandler) Handle(ctx context.Context, cmd CloseBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.checker.Require(ctx, cmd.Role(), services.CapCloseBatch, "close batch"); err != nil {
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

	if err = aggregate.Close(time.Now().UTC()); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
