package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrConfirmEscaleArrivalCommandIsNotConstructed = errors.New(
	"ConfirmEscaleArrivalCommand must be created via NewConfirmEscaleArrivalCommand constructor",
)

// ConfirmEscaleArrivalCommand represents an intermediate-stop confirmation:
// the vehicle has reached one agency on a multi-stop trip. The caller names
// the shipments being dropped there; of those, only the ones destined for
// that agency and still IN_TRANSIT arrive, the rest are skipped silently.
type ConfirmEscaleArrivalCommand struct { //nolint:recvcheck //using for validation
	agencyID    kernel.UUID
	shipmentIDs []kernel.UUID
	performedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmEscaleArrivalCommand creates a command to confirm arrival of the
// listed shipments at an intermediate stop.
func NewConfirmEscaleArrivalCommand(
	agencyID kernel.UUID,
	shipmentIDs []kernel.UUID,
	performedBy kernel.UUID,
) (ConfirmEscaleArrivalCommand, error) {
	cmd := ConfirmEscaleArrivalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgencyID(agencyID),
		cmd.setShipmentIDs(shipmentIDs),
		cmd.setPerformedBy(performedBy),
	); err != nil {
		return ConfirmEscaleArrivalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmEscaleArrivalCommand) Validate() error {
	return c.guard.Validate(ErrConfirmEscaleArrivalCommandIsNotConstructed)
}

// AgencyID returns the agency the vehicle stopped at.
func (c ConfirmEscaleArrivalCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// ShipmentIDs returns the shipments the caller is dropping at the stop.
func (c ConfirmEscaleArrivalCommand) ShipmentIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.shipmentIDs))
	copy(ids, c.shipmentIDs)
	return ids
}

// PerformedBy returns the user confirming the stop.
func (c ConfirmEscaleArrivalCommand) PerformedBy() kernel.UUID {
	return c.performedBy
}

func (c *ConfirmEscaleArrivalCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}

	c.agencyID = agencyID
	return nil
}

func (c *ConfirmEscaleArrivalCommand) setShipmentIDs(shipmentIDs []kernel.UUID) error {
	if len(shipmentIDs) == 0 {
		return errs.NewValueIsRequiredError("shipmentIds")
	}

	for _, id := range shipmentIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.shipmentIDs = make([]kernel.UUID, len(shipmentIDs))
	copy(c.shipmentIDs, shipmentIDs)
	return nil
}

func (c *ConfirmEscaleArrivalCommand) setPerformedBy(performedBy kernel.UUID) error {
	if err := performedBy.Validate(); err != nil {
		return err
	}

	c.performedBy = performedBy
	return nil
}
