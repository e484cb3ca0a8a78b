package ledgerrepo

import (
	"context"

	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
)

// GormLedgerRepository implements LedgerRepository using GORM. Entries are
// immutable value objects, so no aggregate tracking is needed.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Add appends one ledger entry.
func (r *GormLedgerRepository) Add(ctx context.Context, entry session.LedgerEntry) error {
	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllBySession retrieves a session's entries, oldest first.
func (r *GormLedgerRepository) GetAllBySession(ctx context.Context, sessionID kernel.UUID) ([]session.LedgerEntry, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LedgerEntryDTO
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]session.LedgerEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
