package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/services"
)

// ValidateSessionCommandHandler handles cash session reconciliation.
type ValidateSessionCommandHandler struct {
	uowFactory SessionUoWFactory
	checker    CapabilityChecker
}

// NewValidateSessionCommandHandler creates a handler for session validation.
func NewValidateSessionCommandHandler(
	uowFactory SessionUoWFactory,
	checker CapabilityChecker,
) ValidateSessionCommandHandler {
	return ValidateSessionCommandHandler{
		uowFactory: uowFactory,
		checker:    checker,
	}
}

// Handle processes the validate session command. The session keeps the
// computed difference even when it is a deficit; validation records reality,
// it does not correct it.
func (h *ValidateSessionCommandHandler) Handle(ctx context.Context, cmd ValidateSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.checker.Require(ctx, cmd.Role(), services.CapValidateSession, "validate session"); err != nil {
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

	if err = aggregate.MarkValidated(cmd.CountedAmount(), cmd.ValidatedBy(), time.Now().UTC()); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
