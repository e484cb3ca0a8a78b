package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	sessionmodel "logistics/internal/core/domain/model/session"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles shipment registration at the counter.
// One transaction covers the sequence number, the shipment row, the CREATED
// audit event and the origin-payment ledger entries; a failure anywhere
// rolls everything back, including the minted number.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create shipment command and returns the generated
// reference, empty when agency numbering is disabled. When the command
// carries a session, that session must be ACTIVE and the origin-payment cash
// posts to its ledger; without one, the shipment is registered unlinked and
// no ledger entries are written.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if sessionID := cmd.SessionID(); sessionID != nil {
		agentSession, err := uow.SessionRepository().Get(ctx, *sessionID)
		if err != nil {
			return "", err
		}

		if agentSession.Status() != sessionmodel.Active {
			return "", errs.NewStateIsInvalidError("session", "must be ACTIVE to register shipments")
		}
	}

	reference := ""
	if cmd.CompanyCode() != "" {
		sequence, seqErr := uow.SequenceCounter().Next(ctx, cmd.OriginAgencyID())
		if seqErr != nil {
			return "", seqErr
		}

		var refErr error
		reference, refErr = kernel.NewShipmentReference(
			cmd.CompanyCode(), cmd.AgencyCode(), cmd.AgentCode(), sequence)
		if refErr != nil {
			return "", refErr
		}
	}

	now := time.Now().UTC()

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		reference,
		cmd.OriginAgencyID(),
		cmd.DestinationAgencyID(),
		cmd.Sender(),
		cmd.Receiver(),
		cmd.NatureOfGoods(),
		cmd.DeclaredValue(),
		cmd.InsuranceRate(),
		cmd.TransportFee(),
		cmd.PaymentType(),
		cmd.SessionID(),
		cmd.CreatedBy(),
		now,
	)
	if err != nil {
		return "", err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return "", err
	}

	event, err := shipment.NewEvent(
		aggregate.ID(),
		shipment.EventCreated,
		cmd.OriginAgencyID(),
		cmd.CreatedBy(),
		now,
	)
	if err != nil {
		return "", err
	}

	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return "", err
	}

	if cmd.PaymentType() == shipment.PaymentAtOrigin && aggregate.SessionID() != nil {
		if err = h.recordOriginPayment(ctx, uow, aggregate, now); err != nil {
			return "", err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return reference, nil
}

// recordOriginPayment posts the cash received at the counter to the agent's
// session ledger: one transport fee entry, plus an insurance entry when the
// shipment is insured.
func (h *CreateShipmentCommandHandler) recordOriginPayment(
	ctx context.Context,
	uow ShipmentUoW,
	aggregate *shipment.Shipment,
	now time.Time,
) error {
	ledgerRepo := uow.LedgerRepository()

	feeEntry, err := sessionmodel.NewLedgerEntry(
		*aggregate.SessionID(),
		aggregate.ID(),
		aggregate.OriginAgencyID(),
		aggregate.CreatedBy(),
		sessionmodel.EntryTransportFee,
		aggregate.TransportFee(),
		now,
	)
	if err != nil {
		return err
	}

	if err = ledgerRepo.Add(ctx, feeEntry); err != nil {
		return err
	}

	if aggregate.InsuranceAmount().IsZero() {
		return nil
	}

	insuranceEntry, err := sessionmodel.NewLedgerEntry(
		*aggregate.SessionID(),
		aggregate.ID(),
		aggregate.OriginAgencyID(),
		aggregate.CreatedBy(),
		sessionmodel.EntryInsurance,
		aggregate.InsuranceAmount(),
		now,
	)
	if err != nil {
		return err
	}

	return ledgerRepo.Add(ctx, insuranceEntry)
}
