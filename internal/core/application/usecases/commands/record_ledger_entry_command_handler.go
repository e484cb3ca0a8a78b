package commands

import (
	"context"
	"time"

	sessionmodel "logistics/internal/core/domain/model/session"
	"logistics/internal/pkg/errs"
)

// RecordLedgerEntryCommandHandler appends cash movements to a session
// ledger. The ledger is append-only; there is no corresponding update or
// delete operation anywhere in the system.
type RecordLedgerEntryCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewRecordLedgerEntryCommandHandler creates a handler for ledger entries.
func NewRecordLedgerEntryCommandHandler(uowFactory SessionUoWFactory) RecordLedgerEntryCommandHandler {
	return RecordLedgerEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the record ledger entry command. Entries can only be
// posted to a session in ACTIVE status.
func (h *RecordLedgerEntryCommandHandler) Handle(ctx context.Context, cmd RecordLedgerEntryCommand) error {
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

	aggregate, err := uow.SessionRepository().Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if aggregate.Status() != sessionmodel.Active {
		return errs.NewStateIsInvalidError("session", "must be ACTIVE to accept ledger entries")
	}

	entry, err := sessionmodel.NewLedgerEntry(
		cmd.SessionID(),
		cmd.ShipmentID(),
		cmd.AgencyID(),
		cmd.AgentID(),
		cmd.EntryType(),
		cmd.Amount(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.LedgerRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
