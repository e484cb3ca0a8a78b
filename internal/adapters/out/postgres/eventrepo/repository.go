package eventrepo

import (
	"context"

	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// GormEventRepository implements EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Add appends one audit event.
func (r *GormEventRepository) Add(ctx context.Context, event shipment.Event) error {
	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByShipment retrieves a shipment's events, oldest first.
func (r *GormEventRepository) GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]shipment.Event, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("occurred_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]shipment.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
