// Package batchrepo provides data transfer objects and mapping functions for
// batch persistence. Batch membership is not stored here: the batch_id column
// on shipments is the single source of truth, and the aggregate's member list
// is rebuilt from it on load.
package batchrepo

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
)

// BatchDTO represents the database structure for persisting batch aggregates.
// The trip key is unique: one physical trip gets exactly one batch.
type BatchDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginAgencyID uuid.UUID `gorm:"type:uuid;index"`
	TripKey        string    `gorm:"uniqueIndex"`
	VehicleID      uuid.UUID `gorm:"type:uuid"`
	Status         string    `gorm:"index"`
	CreatedBy      uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	DepartedAt     sql.NullTime
	ClosedAt       sql.NullTime
}

// TableName specifies the database table name for batch entities.
func (BatchDTO) TableName() string {
	return "batches"
}

func fromDomain(aggregate *batch.Batch) BatchDTO {
	departedAt := sql.NullTime{}
	if t := aggregate.DepartedAt(); t != nil {
		departedAt = sql.NullTime{Time: *t, Valid: true}
	}

	closedAt := sql.NullTime{}
	if t := aggregate.ClosedAt(); t != nil {
		closedAt = sql.NullTime{Time: *t, Valid: true}
	}

	return BatchDTO{
		ID:             aggregate.ID().Bytes(),
		OriginAgencyID: aggregate.OriginAgencyID().Bytes(),
		TripKey:        aggregate.TripKey(),
		VehicleID:      aggregate.VehicleID().Bytes(),
		Status:         aggregate.Status().String(),
		CreatedBy:      aggregate.CreatedBy().Bytes(),
		CreatedAt:      aggregate.CreatedAt(),
		DepartedAt:     departedAt,
		ClosedAt:       closedAt,
	}
}

func toDomain(dto BatchDTO, shipmentIDs []kernel.UUID) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	originAgencyID, err := kernel.UUIDFromBytes(dto.OriginAgencyID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	status, err := batch.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var departedAt *time.Time
	if dto.DepartedAt.Valid {
		t := dto.DepartedAt.Time
		departedAt = &t
	}

	var closedAt *time.Time
	if dto.ClosedAt.Valid {
		t := dto.ClosedAt.Time
		closedAt = &t
	}

	return batch.RestoreBatch(
		id,
		originAgencyID,
		dto.TripKey,
		vehicleID,
		shipmentIDs,
		status,
		createdBy,
		dto.CreatedAt,
		departedAt,
		closedAt,
	)
}
