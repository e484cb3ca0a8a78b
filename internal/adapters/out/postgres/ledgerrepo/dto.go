// Package ledgerrepo provides data transfer objects and mapping functions for
// the append-only session ledger. There is no update or delete path here on
// purpose: the repository exposes Add and reads only.
package ledgerrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
)

// LedgerEntryDTO represents the database structure for persisting ledger
// entries.
type LedgerEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID  uuid.UUID `gorm:"type:uuid;index"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	AgencyID   uuid.UUID `gorm:"type:uuid;index"`
	AgentID    uuid.UUID `gorm:"type:uuid"`
	EntryType  string
	Amount     decimal.Decimal `gorm:"type:numeric"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for ledger entries.
func (LedgerEntryDTO) TableName() string {
	return "ledger_entries"
}

func fromDomain(entry session.LedgerEntry) LedgerEntryDTO {
	return LedgerEntryDTO{
		ID:         entry.ID().Bytes(),
		SessionID:  entry.SessionID().Bytes(),
		ShipmentID: entry.ShipmentID().Bytes(),
		AgencyID:   entry.AgencyID().Bytes(),
		AgentID:    entry.AgentID().Bytes(),
		EntryType:  string(entry.Type()),
		Amount:     entry.Amount().Decimal(),
		CreatedAt:  entry.CreatedAt(),
	}
}

func toDomain(dto LedgerEntryDTO) (session.LedgerEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return session.LedgerEntry{}, err
	}

	sessionID, err := kernel.UUIDFromBytes(dto.SessionID[:])
	if err != nil {
		return session.LedgerEntry{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return session.LedgerEntry{}, err
	}

	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return session.LedgerEntry{}, err
	}

	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return session.LedgerEntry{}, err
	}

	entryType, err := session.EntryTypeFromString(dto.EntryType)
	if err != nil {
		return session.LedgerEntry{}, err
	}

	return session.RestoreLedgerEntry(
		id,
		sessionID,
		shipmentID,
		agencyID,
		agentID,
		entryType,
		kernel.NewMoneyFromDecimal(dto.Amount),
		dto.CreatedAt,
	), nil
}
