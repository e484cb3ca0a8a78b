package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// ConfirmDepartureCommandHandler handles batch departure. Departure is the
// one bulk transition in the system: the batch flips to DEPARTED and every
// member shipment flips to IN_TRANSIT atomically. If any member cannot
// depart, the whole operation rolls back and the batch stays READY.
type ConfirmDepartureCommandHandler struct {
	uowFactory BatchUoWFactory
	checker    CapabilityChecker
}

// NewConfirmDepartureCommandHandler creates a handler for batch departures.
func NewConfirmDepartureCommandHandler(
	uowFactory BatchUoWFactory,
	checker CapabilityChecker,
) ConfirmDepartureCommandHandler {
	return ConfirmDepartureCommandHandler{
		uowFactory: uowFactory,
		checker:    checker,
	}
}

// Handle processes the confirm departure command. The capability check runs
// before any aggregate is read.
func (h *ConfirmDepartureCommandHandler) Handle(ctx context.Context, cmd ConfirmDepartureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.checker.Require(ctx, cmd.Role(), services.CapDispatchBatch, "confirm departure"); err != nil {
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
	shipmentRepo := uow.ShipmentRepository()
	eventRepo := uow.EventRepository()

	batchAggregate, err := batchRepo.Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = batchAggregate.Depart(now); err != nil {
		return err
	}

	members, err := shipmentRepo.GetAllInBatch(ctx, batchAggregate.ID())
	if err != nil {
		return err
	}

	for _, member := range members {
		if err = member.Depart(); err != nil {
			return err
		}

		if err = shipmentRepo.Update(ctx, member); err != nil {
			return err
		}

		event, eventErr := shipment.NewEvent(
			member.ID(),
			shipment.EventDeparted,
			batchAggregate.OriginAgencyID(),
			cmd.PerformedBy(),
			now,
		)
		if eventErr != nil {
			return eventErr
		}

		if err = eventRepo.Add(ctx, event); err != nil {
			return err
		}
	}

	if err = batchRepo.Update(ctx, batchAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
