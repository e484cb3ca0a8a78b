package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
)

// OpenSessionRequest is the body for POST /sessions.
type OpenSessionRequest struct {
	AgentCode string `json:"agentCode"`
}

// OpenSessionResponse returns the open session's id, whether it was created
// by this call or already existed.
type OpenSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// OpenSession handles POST /api/v1/sessions.
func (s *Server) OpenSession(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req OpenSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewOpenSessionCommand(kernel.NewUUID(), caller.AgencyID, caller.UserID, req.AgentCode)
	if err != nil {
		return badRequest(ctx, err)
	}

	sessionID, err := s.openSessionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OpenSessionResponse{SessionID: sessionID.String()})
}

// ActivateSession handles POST /api/v1/sessions/:id/activate.
func (s *Server) ActivateSession(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	sessionID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewActivateSessionCommand(sessionID, caller.UserID, caller.Role)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.activateSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseSession handles POST /api/v1/sessions/:id/close.
func (s *Server) CloseSession(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCloseSessionCommand(sessionID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.closeSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ValidateSessionRequest is the body for POST /sessions/:id/validate.
type ValidateSessionRequest struct {
	CountedAmount string `json:"countedAmount"`
}

// ValidateSession handles POST /api/v1/sessions/:id/validate.
func (s *Server) ValidateSession(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	sessionID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req ValidateSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	counted, err := kernel.NewMoneyFromString(req.CountedAmount)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewValidateSessionCommand(sessionID, counted, caller.UserID, caller.Role)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.validateSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordLedgerEntryRequest is the body for POST /sessions/:id/entries.
type RecordLedgerEntryRequest struct {
	ShipmentID string `json:"shipmentId"`
	EntryType  string `json:"entryType"`
	Amount     string `json:"amount"`
}

// RecordLedgerEntry handles POST /api/v1/sessions/:id/entries.
func (s *Server) RecordLedgerEntry(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	sessionID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req RecordLedgerEntryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return badRequest(ctx, err)
	}
	entryType, err := session.EntryTypeFromString(req.EntryType)
	if err != nil {
		return badRequest(ctx, err)
	}
	amount, err := kernel.NewMoneyFromString(req.Amount)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRecordLedgerEntryCommand(
		sessionID, shipmentID, caller.AgencyID, caller.UserID, entryType, amount)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.recordLedgerEntryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetSessionReport handles GET /api/v1/sessions/:id/report.
func (s *Server) GetSessionReport(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetSessionReportQuery(sessionID)
	if err != nil {
		return badRequest(ctx, err)
	}

	report, err := s.getSessionReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, report)
}

// GetUnvalidatedSessions handles GET /api/v1/agencies/:id/sessions/unvalidated.
func (s *Server) GetUnvalidatedSessions(ctx echo.Context) error {
	agencyID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetUnvalidatedSessionsQuery(agencyID)
	if err != nil {
		return badRequest(ctx, err)
	}

	sessions, err := s.getUnvalidatedSessionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, sessions)
}
