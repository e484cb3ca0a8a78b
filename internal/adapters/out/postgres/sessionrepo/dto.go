// Package sessionrepo provides data transfer objects and mapping functions
// for cash session persistence.
package sessionrepo

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
)

// SessionDTO represents the database structure for persisting session
// aggregates. The partial unique index on agent_id over PENDING and ACTIVE
// rows backs the one-open-session-per-agent invariant at the storage level;
// the repository's in-transaction lookup is the first line of defense, the
// index is the last.
type SessionDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgencyID       uuid.UUID `gorm:"type:uuid;index"`
	AgentID        uuid.UUID `gorm:"type:uuid;index;index:idx_sessions_one_open_per_agent,unique,where:status IN ('PENDING','ACTIVE')"`
	AgentCode      string
	Status         string `gorm:"index"`
	CreatedAt      time.Time
	OpenedAt       sql.NullTime
	ClosedAt       sql.NullTime
	ValidatedAt    sql.NullTime
	ExpectedAmount decimal.NullDecimal `gorm:"type:numeric"`
	CountedAmount  decimal.NullDecimal `gorm:"type:numeric"`
	Difference     decimal.NullDecimal `gorm:"type:numeric"`
	ActivatedBy    *uuid.UUID          `gorm:"type:uuid"`
	ValidatedBy    *uuid.UUID          `gorm:"type:uuid"`
}

// TableName specifies the database table name for session entities.
func (SessionDTO) TableName() string {
	return "sessions"
}

func fromDomain(aggregate *session.Session) SessionDTO {
	return SessionDTO{
		ID:             aggregate.ID().Bytes(),
		AgencyID:       aggregate.AgencyID().Bytes(),
		AgentID:        aggregate.AgentID().Bytes(),
		AgentCode:      aggregate.AgentCode(),
		Status:         aggregate.Status().String(),
		CreatedAt:      aggregate.CreatedAt(),
		OpenedAt:       nullTime(aggregate.OpenedAt()),
		ClosedAt:       nullTime(aggregate.ClosedAt()),
		ValidatedAt:    nullTime(aggregate.ValidatedAt()),
		ExpectedAmount: nullDecimal(aggregate.ExpectedAmount()),
		CountedAmount:  nullDecimal(aggregate.CountedAmount()),
		Difference:     nullDecimal(aggregate.Difference()),
		ActivatedBy:    nullUUID(aggregate.ActivatedBy()),
		ValidatedBy:    nullUUID(aggregate.ValidatedBy()),
	}
}

func toDomain(dto SessionDTO) (*session.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}

	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	status, err := session.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	activatedBy, err := domainUUID(dto.ActivatedBy)
	if err != nil {
		return nil, err
	}

	validatedBy, err := domainUUID(dto.ValidatedBy)
	if err != nil {
		return nil, err
	}

	return session.RestoreSession(
		id,
		agencyID,
		agentID,
		dto.AgentCode,
		status,
		dto.CreatedAt,
		timePtr(dto.OpenedAt), timePtr(dto.ClosedAt), timePtr(dto.ValidatedAt),
		moneyPtr(dto.ExpectedAmount), moneyPtr(dto.CountedAmount), moneyPtr(dto.Difference),
		activatedBy, validatedBy,
	)
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullDecimal(m *kernel.Money) decimal.NullDecimal {
	if m == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: m.Decimal(), Valid: true}
}

func moneyPtr(d decimal.NullDecimal) *kernel.Money {
	if !d.Valid {
		return nil
	}
	m := kernel.NewMoneyFromDecimal(d.Decimal)
	return &m
}

func nullUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
