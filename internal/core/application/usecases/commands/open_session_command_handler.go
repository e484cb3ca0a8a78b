package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/pkg/errs"
)

// OpenSessionCommandHandler handles the business logic for opening a cash
// session. The open-session lookup and the insert run in one transaction;
// when two opens for the same agent interleave anyway, the storage-level
// unique index on open sessions rejects the second insert as a conflict.
type OpenSessionCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewOpenSessionCommandHandler creates a handler for session opening.
func NewOpenSessionCommandHandler(uowFactory SessionUoWFactory) OpenSessionCommandHandler {
	return OpenSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the open session command and returns the ID of the
// agent's open session: the newly created one, or the existing one when the
// agent already has a session in PENDING or ACTIVE status.
func (h *OpenSessionCommandHandler) Handle(ctx context.Context, cmd OpenSessionCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()

	existing, err := sessionRepo.GetOpenByAgent(ctx, cmd.AgentID())
	if err == nil {
		return existing.ID(), nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}

	aggregate, err := session.NewSession(
		cmd.SessionID(),
		cmd.AgencyID(),
		cmd.AgentID(),
		cmd.AgentCode(),
		time.Now().UTC(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = sessionRepo.Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
