package commands

import (
	"context"
	"time"

	sessionmodel "logistics/internal/core/domain/model/session"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// ConfirmPickupCommandHandler handles the receiver collecting a shipment.
// The delivery transition, its audit event and the destination-payment
// ledger entry commit together.
type ConfirmPickupCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewConfirmPickupCommandHandler creates a handler for pickups.
func NewConfirmPickupCommandHandler(uowFactory ShipmentUoWFactory) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirm pickup command.
func (h *ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.ConfirmPickup(cmd.CollectedAmount()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	now := time.Now().UTC()

	event, err := shipment.NewEvent(
		aggregate.ID(),
		shipment.EventDelivered,
		cmd.AgencyID(),
		cmd.PerformedBy(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return err
	}

	if cmd.CollectedAmount() != nil {
		if err = h.recordDestinationPayment(ctx, uow, cmd, aggregate, now); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// recordDestinationPayment posts the collected cash to the receiving
// agent's session, which must be ACTIVE.
func (h *ConfirmPickupCommandHandler) recordDestinationPayment(
	ctx context.Context,
	uow ShipmentUoW,
	cmd ConfirmPickupCommand,
	aggregate *shipment.Shipment,
	now time.Time,
) error {
	agentSession, err := uow.SessionRepository().Get(ctx, *cmd.SessionID())
	if err != nil {
		return err
	}

	if agentSession.Status() != sessionmodel.Active {
		return errs.NewStateIsInvalidError("session", "must be ACTIVE to accept ledger entries")
	}

	entry, err := sessionmodel.NewLedgerEntry(
		agentSession.ID(),
		aggregate.ID(),
		cmd.AgencyID(),
		cmd.PerformedBy(),
		sessionmodel.EntryDestinationPayment,
		*cmd.CollectedAmount(),
		now,
	)
	if err != nil {
		return err
	}

	return uow.LedgerRepository().Add(ctx, entry)
}
