package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// CreateShipmentRequest is the body for POST /shipments. Money fields are
// decimal strings. The company, agency and agent codes are optional
// together: leaving the company code empty disables reference numbering for
// this shipment. The session id is optional; without one the shipment is
// registered outside a cash session and no ledger entries post.
type CreateShipmentRequest struct {
	CompanyCode         string  `json:"companyCode"`
	AgencyCode          string  `json:"agencyCode"`
	AgentCode           string  `json:"agentCode"`
	DestinationAgencyID string  `json:"destinationAgencyId"`
	SenderName          string  `json:"senderName"`
	SenderPhone         string  `json:"senderPhone"`
	ReceiverName        string  `json:"receiverName"`
	ReceiverPhone       string  `json:"receiverPhone"`
	NatureOfGoods       string  `json:"natureOfGoods"`
	DeclaredValue       string  `json:"declaredValue"`
	InsuranceRate       string  `json:"insuranceRate"`
	TransportFee        string  `json:"transportFee"`
	PaymentType         string  `json:"paymentType"`
	SessionID           *string `json:"sessionId"`
}

// CreateShipmentResponse returns the new shipment's id and its reference,
// empty when numbering was disabled.
type CreateShipmentResponse struct {
	ShipmentID string `json:"shipmentId"`
	Reference  string `json:"reference"`
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := buildCreateShipmentCommand(caller, req)
	if err != nil {
		return badRequest(ctx, err)
	}

	reference, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateShipmentResponse{
		ShipmentID: cmd.ShipmentID().String(),
		Reference:  reference,
	})
}

func buildCreateShipmentCommand(caller identity, req CreateShipmentRequest) (commands.CreateShipmentCommand, error) {
	destinationAgencyID, err := kernel.UUIDFromString(req.DestinationAgencyID)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	var sessionID *kernel.UUID
	if req.SessionID != nil {
		id, idErr := kernel.UUIDFromString(*req.SessionID)
		if idErr != nil {
			return commands.CreateShipmentCommand{}, idErr
		}
		sessionID = &id
	}

	sender, err := shipment.NewParty(req.SenderName, req.SenderPhone)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	receiver, err := shipment.NewParty(req.ReceiverName, req.ReceiverPhone)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}

	declaredValue, err := kernel.NewMoneyFromString(req.DeclaredValue)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	insuranceRate, err := decimal.NewFromString(req.InsuranceRate)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	transportFee, err := kernel.NewMoneyFromString(req.TransportFee)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}
	paymentType, err := shipment.PaymentTypeFromString(req.PaymentType)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}

	return commands.NewCreateShipmentCommand(
		kernel.NewUUID(),
		req.CompanyCode,
		req.AgencyCode,
		req.AgentCode,
		caller.AgencyID,
		destinationAgencyID,
		sender,
		receiver,
		req.NatureOfGoods,
		declaredValue,
		insuranceRate,
		transportFee,
		paymentType,
		sessionID,
		caller.UserID,
	)
}

// RecordTransitionRequest is the body for POST /shipments/:id/transition.
type RecordTransitionRequest struct {
	Target string `json:"target"`
}

// RecordTransition handles POST /api/v1/shipments/:id/transition.
func (s *Server) RecordTransition(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	shipmentID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req RecordTransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	target, err := shipment.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRecordShipmentTransitionCommand(
		shipmentID, target, caller.AgencyID, caller.UserID, caller.Role)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.recordTransitionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPickupRequest is the body for POST /shipments/:id/pickup. The
// collected amount and session id are present together for destination-paid
// shipments and absent for origin-paid ones.
type ConfirmPickupRequest struct {
	CollectedAmount *string `json:"collectedAmount"`
	SessionID       *string `json:"sessionId"`
}

// ConfirmPickup handles POST /api/v1/shipments/:id/pickup.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	shipmentID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req ConfirmPickupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	var collected *kernel.Money
	if req.CollectedAmount != nil {
		m, moneyErr := kernel.NewMoneyFromString(*req.CollectedAmount)
		if moneyErr != nil {
			return badRequest(ctx, moneyErr)
		}
		collected = &m
	}

	var sessionID *kernel.UUID
	if req.SessionID != nil {
		id, idErr := kernel.UUIDFromString(*req.SessionID)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}
		sessionID = &id
	}

	cmd, err := commands.NewConfirmPickupCommand(shipmentID, caller.AgencyID, caller.UserID, collected, sessionID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentHistory handles GET /api/v1/shipments/:id/history.
func (s *Server) GetShipmentHistory(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetShipmentHistoryQuery(shipmentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	history, err := s.getShipmentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, history)
}
