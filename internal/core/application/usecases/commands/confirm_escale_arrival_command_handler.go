package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
)

// ConfirmEscaleArrivalCommandHandler handles arrival at an intermediate stop
// of a multi-stop trip.
type ConfirmEscaleArrivalCommandHandler struct {
	uowFactory BatchUoWFactory
}

// NewConfirmEscaleArrivalCommandHandler creates a handler for escale arrivals.
func NewConfirmEscaleArrivalCommandHandler(uowFactory BatchUoWFactory) ConfirmEscaleArrivalCommandHandler {
	return ConfirmEscaleArrivalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the escale arrival for the shipments the caller listed.
// A listed shipment arrives only when its destination is the stop's agency
// and it is still IN_TRANSIT; every other listed shipment is left untouched.
// The operation reports success even when nothing matched, because an empty
// stop is a normal trip, not a fault.
func (h *ConfirmEscaleArrivalCommandHandler) Handle(ctx context.Context, cmd ConfirmEscaleArrivalCommand) error {
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
	eventRepo := uow.EventRepository()

	now := time.Now().UTC()
	for _, shipmentID := range cmd.ShipmentIDs() {
		candidate, err := shipmentRepo.Get(ctx, shipmentID)
		if err != nil {
			return err
		}

		if candidate.Status() != shipment.InTransit {
			continue
		}
		if !candidate.DestinationAgencyID().IsEqual(cmd.AgencyID()) {
			continue
		}

		if err = candidate.ArriveAt(cmd.AgencyID()); err != nil {
			return err
		}

		if err = shipmentRepo.Update(ctx, candidate); err != nil {
			return err
		}

		event, eventErr := shipment.NewEvent(
			candidate.ID(),
			shipment.EventArrived,
			cmd.AgencyID(),
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

	return uow.Commit(ctx)
}
