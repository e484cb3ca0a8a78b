package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
)

// CreateBatchRequest is the body for POST /batches. The trip date carries no
// time component; the departure time slot is the free-form label ("08h") that
// feeds the trip key.
type CreateBatchRequest struct {
	RouteCode     string `json:"routeCode"`
	DepartureTime string `json:"departureTime"`
	TripDate      string `json:"tripDate"`
	VehicleID     string `json:"vehicleId"`
}

// CreateBatchResponse returns the new batch's id.
type CreateBatchResponse struct {
	BatchID string `json:"batchId"`
}

// CreateBatch handles POST /api/v1/batches.
func (s *Server) CreateBatch(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CreateBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	tripDate, err := time.Parse("2006-01-02", req.TripDate)
	if err != nil {
		return badRequest(ctx, err)
	}
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return badRequest(ctx, err)
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewCreateBatchCommand(
		batchID, caller.AgencyID, req.RouteCode, req.DepartureTime, tripDate, vehicleID, caller.UserID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.createBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateBatchResponse{BatchID: batchID.String()})
}

// AddShipmentToBatchRequest is the body for POST /batches/:id/shipments.
type AddShipmentToBatchRequest struct {
	ShipmentID string `json:"shipmentId"`
}

// AddShipmentToBatch handles POST /api/v1/batches/:id/shipments.
func (s *Server) AddShipmentToBatch(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AddShipmentToBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddShipmentToBatchCommand(batchID, shipmentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.addShipmentToBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveShipmentFromBatch handles DELETE /api/v1/batches/:id/shipments/:shipmentId.
func (s *Server) RemoveShipmentFromBatch(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRemoveShipmentFromBatchCommand(batchID, shipmentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.removeShipmentFromBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkBatchReady handles POST /api/v1/batches/:id/ready.
func (s *Server) MarkBatchReady(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewMarkBatchReadyCommand(batchID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.markBatchReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDeparture handles POST /api/v1/batches/:id/depart.
func (s *Server) ConfirmDeparture(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	batchID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewConfirmDepartureCommand(batchID, caller.UserID, caller.Role)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.confirmDepartureHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmEscaleArrivalRequest is the body for POST /shipments/escale-arrival.
// The caller lists the shipments being dropped at the stop.
type ConfirmEscaleArrivalRequest struct {
	ShipmentIDs []string `json:"shipmentIds"`
}

// ConfirmEscaleArrival handles POST /api/v1/shipments/escale-arrival. The
// arrival agency is the caller's own agency: a stop can only confirm what
// reached it.
func (s *Server) ConfirmEscaleArrival(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req ConfirmEscaleArrivalRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	shipmentIDs := make([]kernel.UUID, 0, len(req.ShipmentIDs))
	for _, raw := range req.ShipmentIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		shipmentIDs = append(shipmentIDs, id)
	}

	cmd, err := commands.NewConfirmEscaleArrivalCommand(caller.AgencyID, shipmentIDs, caller.UserID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.confirmEscaleArrivalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseBatch handles POST /api/v1/batches/:id/close.
func (s *Server) CloseBatch(ctx echo.Context) error {
	caller, err := callerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	batchID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCloseBatchCommand(batchID, caller.UserID, caller.Role)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.closeBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBatchManifest handles GET /api/v1/batches/:id/manifest.
func (s *Server) GetBatchManifest(ctx echo.Context) error {
	batchID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetBatchManifestQuery(batchID)
	if err != nil {
		return badRequest(ctx, err)
	}

	manifest, err := s.getBatchManifestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, manifest)
}
