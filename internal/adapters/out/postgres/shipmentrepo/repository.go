package shipmentrepo

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment. A full-row save rather than a sparse
// update: nullable columns like batch_id must be written back to NULL when a
// shipment leaves its batch.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInBatch retrieves every shipment linked to the given batch.
func (r *GormShipmentRepository) GetAllInBatch(ctx context.Context, batchID kernel.UUID) ([]*shipment.Shipment, error) {
	if err := batchID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "batch_id = ?", batchID.Bytes()).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

// SumChargesBySession computes the session's expected amount live:
// SUM(transport_fee + insurance_amount) over its shipments. COALESCE keeps
// an empty session at zero instead of NULL.
func (r *GormShipmentRepository) SumChargesBySession(ctx context.Context, sessionID kernel.UUID) (kernel.Money, error) {
	if err := sessionID.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var total decimal.Decimal
	row := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(transport_fee + insurance_amount), 0)
		FROM shipments
		WHERE session_id = ?
	`, sessionID.Bytes()).Row()
	if err := row.Scan(&total); err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewMoneyFromDecimal(total), nil
}
