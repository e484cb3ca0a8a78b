// Package http exposes the engine's commands and queries over a JSON API.
// It coordinates between HTTP handlers and application use cases: handlers
// parse and translate, use cases decide.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// Server wires the HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	openSessionHandler             commands.OpenSessionCommandHandler
	activateSessionHandler         commands.ActivateSessionCommandHandler
	closeSessionHandler            commands.CloseSessionCommandHandler
	validateSessionHandler         commands.ValidateSessionCommandHandler
	recordLedgerEntryHandler       commands.RecordLedgerEntryCommandHandler
	createBatchHandler             commands.CreateBatchCommandHandler
	addShipmentToBatchHandler      commands.AddShipmentToBatchCommandHandler
	removeShipmentFromBatchHandler commands.RemoveShipmentFromBatchCommandHandler
	markBatchReadyHandler          commands.MarkBatchReadyCommandHandler
	confirmDepartureHandler        commands.ConfirmDepartureCommandHandler
	confirmEscaleArrivalHandler    commands.ConfirmEscaleArrivalCommandHandler
	closeBatchHandler              commands.CloseBatchCommandHandler
	createShipmentHandler          commands.CreateShipmentCommandHandler
	recordTransitionHandler        commands.RecordShipmentTransitionCommandHandler
	confirmPickupHandler           commands.ConfirmPickupCommandHandler

	// Query handlers
	getSessionReportHandler       queries.GetSessionReportQueryHandler
	getShipmentHistoryHandler     queries.GetShipmentHistoryQueryHandler
	getBatchManifestHandler       queries.GetBatchManifestQueryHandler
	getUnvalidatedSessionsHandler queries.GetUnvalidatedSessionsQueryHandler
}

// Handlers groups everything the server needs, so the composition root builds
// one struct instead of threading nineteen constructor arguments.
type Handlers struct {
	OpenSession             commands.OpenSessionCommandHandler
	ActivateSession         commands.ActivateSessionCommandHandler
	CloseSession            commands.CloseSessionCommandHandler
	ValidateSession         commands.ValidateSessionCommandHandler
	RecordLedgerEntry       commands.RecordLedgerEntryCommandHandler
	CreateBatch             commands.CreateBatchCommandHandler
	AddShipmentToBatch      commands.AddShipmentToBatchCommandHandler
	RemoveShipmentFromBatch commands.RemoveShipmentFromBatchCommandHandler
	MarkBatchReady          commands.MarkBatchReadyCommandHandler
	ConfirmDeparture        commands.ConfirmDepartureCommandHandler
	ConfirmEscaleArrival    commands.ConfirmEscaleArrivalCommandHandler
	CloseBatch              commands.CloseBatchCommandHandler
	CreateShipment          commands.CreateShipmentCommandHandler
	RecordTransition        commands.RecordShipmentTransitionCommandHandler
	ConfirmPickup           commands.ConfirmPickupCommandHandler

	GetSessionReport       queries.GetSessionReportQueryHandler
	GetShipmentHistory     queries.GetShipmentHistoryQueryHandler
	GetBatchManifest       queries.GetBatchManifestQueryHandler
	GetUnvalidatedSessions queries.GetUnvalidatedSessionsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		openSessionHandler:             h.OpenSession,
		activateSessionHandler:         h.ActivateSession,
		closeSessionHandler:            h.CloseSession,
		validateSessionHandler:         h.ValidateSession,
		recordLedgerEntryHandler:       h.RecordLedgerEntry,
		createBatchHandler:             h.CreateBatch,
		addShipmentToBatchHandler:      h.AddShipmentToBatch,
		removeShipmentFromBatchHandler: h.RemoveShipmentFromBatch,
		markBatchReadyHandler:          h.MarkBatchReady,
		confirmDepartureHandler:        h.ConfirmDeparture,
		confirmEscaleArrivalHandler:    h.ConfirmEscaleArrival,
		closeBatchHandler:              h.CloseBatch,
		createShipmentHandler:          h.CreateShipment,
		recordTransitionHandler:        h.RecordTransition,
		confirmPickupHandler:           h.ConfirmPickup,
		getSessionReportHandler:        h.GetSessionReport,
		getShipmentHistoryHandler:      h.GetShipmentHistory,
		getBatchManifestHandler:        h.GetBatchManifest,
		getUnvalidatedSessionsHandler:  h.GetUnvalidatedSessions,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/sessions", s.OpenSession)
	api.POST("/sessions/:id/activate", s.ActivateSession)
	api.POST("/sessions/:id/close", s.CloseSession)
	api.POST("/sessions/:id/validate", s.ValidateSession)
	api.POST("/sessions/:id/entries", s.RecordLedgerEntry)
	api.GET("/sessions/:id/report", s.GetSessionReport)
	api.GET("/agencies/:id/sessions/unvalidated", s.GetUnvalidatedSessions)

	api.POST("/batches", s.CreateBatch)
	api.POST("/batches/:id/shipments", s.AddShipmentToBatch)
	api.DELETE("/batches/:id/shipments/:shipmentId", s.RemoveShipmentFromBatch)
	api.POST("/batches/:id/ready", s.MarkBatchReady)
	api.POST("/batches/:id/depart", s.ConfirmDeparture)
	api.POST("/batches/:id/close", s.CloseBatch)
	api.GET("/batches/:id/manifest", s.GetBatchManifest)

	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/escale-arrival", s.ConfirmEscaleArrival)
	api.POST("/shipments/:id/transition", s.RecordTransition)
	api.POST("/shipments/:id/pickup", s.ConfirmPickup)
	api.GET("/shipments/:id/history", s.GetShipmentHistory)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// identity carries the caller as resolved by the upstream identity service.
// The engine trusts these headers; authenticating them is the gateway's job.
type identity struct {
	UserID   kernel.UUID
	Role     services.Role
	AgencyID kernel.UUID
}

func callerIdentity(ctx echo.Context) (identity, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-User-Id"))
	if err != nil {
		return identity{}, errs.NewValueIsRequiredError("X-User-Id")
	}
	agencyID, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-Agency-Id"))
	if err != nil {
		return identity{}, errs.NewValueIsRequiredError("X-Agency-Id")
	}
	role := services.Role(ctx.Request().Header.Get("X-User-Role"))
	if role == "" {
		return identity{}, errs.NewValueIsRequiredError("X-User-Role")
	}

	return identity{UserID: userID, Role: role, AgencyID: agencyID}, nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// writeError maps domain errors onto HTTP status codes: missing objects are
// 404, authorization failures 403, illegal state and conflicting writes 409,
// everything the caller can fix 400.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrStateIsInvalid),
		errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
