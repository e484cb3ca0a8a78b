package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// GetBatchManifestQueryHandler builds the loading manifest for one batch.
type GetBatchManifestQueryHandler struct {
	db *gorm.DB
}

// NewGetBatchManifestQueryHandler creates a handler for batch manifests.
func NewGetBatchManifestQueryHandler(db *gorm.DB) GetBatchManifestQueryHandler {
	return GetBatchManifestQueryHandler{db: db}
}

// Handle executes the query: the trip header first, then the manifest lines
// ordered by reference.
func (h GetBatchManifestQueryHandler) Handle(
	ctx context.Context,
	query GetBatchManifestQuery,
) (GetBatchManifestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBatchManifestQueryResponse{}, err
	}

	response, err := h.loadHeader(ctx, query)
	if err != nil {
		return GetBatchManifestQueryResponse{}, err
	}

	shipments, err := h.loadShipments(ctx, query)
	if err != nil {
		return GetBatchManifestQueryResponse{}, err
	}
	response.Shipments = shipments

	return response, nil
}

func (h GetBatchManifestQueryHandler) loadHeader(
	ctx context.Context,
	query GetBatchManifestQuery,
) (GetBatchManifestQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			trip_key,
			status,
			vehicle_id,
			departed_at
		FROM batches
		WHERE id = ?
	`, query.BatchID().Bytes()).Rows()
	if err != nil {
		return GetBatchManifestQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetBatchManifestQueryResponse{}, err
		}
		return GetBatchManifestQueryResponse{},
			errs.NewObjectNotFoundError("batchId", query.BatchID())
	}

	var response GetBatchManifestQueryResponse
	var id, vehicleID uuid.UUID
	var departedAt sql.NullTime

	if err = rows.Scan(&id, &response.TripKey, &response.Status, &vehicleID, &departedAt); err != nil {
		return GetBatchManifestQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetBatchManifestQueryResponse{}, err
	}
	if response.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return GetBatchManifestQueryResponse{}, err
	}
	if departedAt.Valid {
		t := departedAt.Time
		response.DepartedAt = &t
	}

	return response, rows.Err()
}

func (h GetBatchManifestQueryHandler) loadShipments(
	ctx context.Context,
	query GetBatchManifestQuery,
) ([]ManifestShipmentResponse, error) {
	shipments := make([]ManifestShipmentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			receiver_name,
			destination_agency_id,
			status,
			transport_fee
		FROM shipments
		WHERE batch_id = ?
		ORDER BY reference, id
	`, query.BatchID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line ManifestShipmentResponse
		var id, destinationAgencyID uuid.UUID
		var fee decimal.Decimal

		if err = rows.Scan(
			&id,
			&line.Reference,
			&line.ReceiverName,
			&destinationAgencyID,
			&line.Status,
			&fee,
		); err != nil {
			return nil, err
		}

		if line.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if line.DestinationAgencyID, err = kernel.UUIDFromBytes(destinationAgencyID[:]); err != nil {
			return nil, err
		}
		line.TransportFee = fee.String()
		shipments = append(shipments, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
