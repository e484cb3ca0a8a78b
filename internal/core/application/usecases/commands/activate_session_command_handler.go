package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/services"
)

// ActivateSessionCommandHandler handles cash session activation. The
// capability check runs before any aggregate is read.
type ActivateSessionCommandHandler struct {
	uowFactory SessionUoWFactory
	checker    CapabilityChecker
}

// NewActivateSessionCommandHandler creates a handler for session activation.
func NewActivateSessionCommandHandler(
	uowFactory SessionUoWFactory,
	checker CapabilityChecker,
) ActivateSessionCommandHandler {
	return ActivateSessionCommandHandler{
		uowFactory: uowFactory,
		checker:    checker,
	}
}

// Handle processes the activate session command.
func (h *ActivateSessionCommandHandler) Handle(ctx context.Context, cmd ActivateSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.checker.Require(ctx, cmd.Role(), services.CapActivateSession, "activate session"); err != nil {
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

	if err = aggregate.Activate(cmd.ActivatedBy(), time.Now().UTC()); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
