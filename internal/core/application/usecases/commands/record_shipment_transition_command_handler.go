package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// RecordShipmentTransitionCommandHandler handles single-shipment lifecycle
// transitions. Claim transitions are plan-gated and run through the
// capability checker; all other transitions are open to any authenticated
// agency user.
type RecordShipmentTransitionCommandHandler struct {
	uowFactory ShipmentUoWFactory
	checker    CapabilityChecker
}

// NewRecordShipmentTransitionCommandHandler creates a handler for lifecycle
// transitions.
func NewRecordShipmentTransitionCommandHandler(
	uowFactory ShipmentUoWFactory,
	checker CapabilityChecker,
) RecordShipmentTransitionCommandHandler {
	return RecordShipmentTransitionCommandHandler{
		uowFactory: uowFactory,
		checker:    checker,
	}
}

// Handle processes the transition command: the shipment moves through the
// transition table and the matching audit event is appended in the same
// transaction.
func (h *RecordShipmentTransitionCommandHandler) Handle(ctx context.Context, cmd RecordShipmentTransitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Target() == shipment.ClaimPending || cmd.Target() == shipment.ClaimPaid {
		if err := h.checker.Require(ctx, cmd.Role(), services.CapProcessClaim, "process claim"); err != nil {
			return err
		}
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

	if err = aggregate.TransitionTo(cmd.Target(), cmd.AgencyID()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	eventType, err := shipment.EventForStatus(cmd.Target())
	if err != nil {
		return err
	}

	event, err := shipment.NewEvent(
		aggregate.ID(),
		eventType,
		cmd.AgencyID(),
		cmd.PerformedBy(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
