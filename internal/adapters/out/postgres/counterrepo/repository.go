// Package counterrepo implements the per-agency sequence counter on a single
// upsert. The counter backs human-readable shipment references, so gaps are
// acceptable but duplicates are not.
package counterrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
)

// CounterDTO represents the database structure for agency counters. It exists
// for schema migration; the repository itself works through raw SQL.
type CounterDTO struct {
	AgencyID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Value     int64
	UpdatedAt time.Time
}

// TableName specifies the database table name for agency counters.
func (CounterDTO) TableName() string {
	return "agency_counters"
}

// GormSequenceCounter implements SequenceCounter using GORM.
type GormSequenceCounter struct {
	db *gorm.DB
}

// NewGormSequenceCounter creates a new GORM sequence counter.
func NewGormSequenceCounter(db *gorm.DB) *GormSequenceCounter {
	return &GormSequenceCounter{db: db}
}

// Next increments and returns the agency's counter. The insert-or-update runs
// as one statement, so the row lock taken by Postgres makes concurrent calls
// serialize instead of reading the same value.
func (c *GormSequenceCounter) Next(ctx context.Context, agencyID kernel.UUID) (int64, error) {
	if err := agencyID.Validate(); err != nil {
		return 0, err
	}

	var value int64
	row := c.db.WithContext(ctx).Raw(`
		INSERT INTO agency_counters (agency_id, value, updated_at)
		VALUES (?, 1, NOW())
		ON CONFLICT (agency_id)
		DO UPDATE SET value = agency_counters.value + 1, updated_at = NOW()
		RETURNING value
	`, agencyID.Bytes()).Row()
	if err := row.Scan(&value); err != nil {
		return 0, err
	}

	return value, nil
}
