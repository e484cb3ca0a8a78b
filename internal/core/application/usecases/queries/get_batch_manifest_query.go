package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetBatchManifestQueryIsNotConstructed = errors.New(
	"GetBatchManifestQuery must be created via NewGetBatchManifestQuery constructor",
)

// GetBatchManifestQuery retrieves the loading manifest of one batch: the
// trip header and every shipment on board. This is the document handed to
// the driver at departure.
type GetBatchManifestQuery struct {
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBatchManifestQuery creates a query for a batch manifest.
func NewGetBatchManifestQuery(batchID kernel.UUID) (GetBatchManifestQuery, error) {
	if err := batchID.Validate(); err != nil {
		return GetBatchManifestQuery{}, err
	}

	return GetBatchManifestQuery{
		batchID: batchID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBatchManifestQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchManifestQueryIsNotConstructed)
}

// BatchID returns the batch whose manifest is requested.
func (q GetBatchManifestQuery) BatchID() kernel.UUID {
	return q.batchID
}

// GetBatchManifestQueryResponse is the driver-facing view of one trip.
type GetBatchManifestQueryResponse struct {
	ID         kernel.UUID
	TripKey    string
	Status     string
	VehicleID  kernel.UUID
	DepartedAt *time.Time
	Shipments  []ManifestShipmentResponse
}

// ManifestShipmentResponse is one line of the manifest.
type ManifestShipmentResponse struct {
	ID                  kernel.UUID
	Reference           string
	ReceiverName        string
	DestinationAgencyID kernel.UUID
	Status              string
	TransportFee        string
}
