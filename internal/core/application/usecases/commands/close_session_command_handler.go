package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/session"
)

// CloseSessionCommandHandler handles cash session closure. Closing an
// already closed session is a no-op, so a retried request does not recompute
// or overwrite the frozen expected amount.
type CloseSessionCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewCloseSessionCommandHandler creates a handler for session closure.
func NewCloseSessionCommandHandler(uowFactory SessionUoWFactory) CloseSessionCommandHandler {
	return CloseSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the close session command. The expected amount is the
// live sum of transport fees and insurance over the session's shipments,
// computed in the same transaction that freezes it.
func (h *CloseSessionCommandHandler) Handle(ctx context.Context, cmd CloseSessionCommand) error {
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

	sessionRepo := uow.SessionRepository()

	aggregate, err := sessionRepo.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if aggregate.Status() == session.Closed || aggregate.Status() == session.Validated {
		return nil
	}

	expected, err := uow.ShipmentRepository().SumChargesBySession(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if err = aggregate.Close(expected, time.Now().UTC()); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
