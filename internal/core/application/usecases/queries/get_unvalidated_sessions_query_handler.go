package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
)

// GetUnvalidatedSessionsQueryHandler lists an agency's closed sessions that
// have not been reconciled yet.
type GetUnvalidatedSessionsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnvalidatedSessionsQueryHandler creates a handler for the
// accountant's worklist.
func NewGetUnvalidatedSessionsQueryHandler(db *gorm.DB) GetUnvalidatedSessionsQueryHandler {
	return GetUnvalidatedSessionsQueryHandler{db: db}
}

// Handle executes the query, oldest closed session first.
func (h GetUnvalidatedSessionsQueryHandler) Handle(
	ctx context.Context,
	query GetUnvalidatedSessionsQuery,
) ([]GetUnvalidatedSessionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sessions := make([]GetUnvalidatedSessionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			agent_id,
			agent_code,
			closed_at,
			expected_amount
		FROM sessions
		WHERE agency_id = ? AND status = ?
		ORDER BY closed_at, id
	`, query.AgencyID().Bytes(), session.Closed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetUnvalidatedSessionsQueryResponse
		var id, agentID uuid.UUID
		var closedAt sql.NullTime
		var expected decimal.NullDecimal

		if err = rows.Scan(&id, &agentID, &item.AgentCode, &closedAt, &expected); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.AgentID, err = kernel.UUIDFromBytes(agentID[:]); err != nil {
			return nil, err
		}
		if closedAt.Valid {
			t := closedAt.Time
			item.ClosedAt = &t
		}
		item.ExpectedAmount = nullDecimalString(expected)
		sessions = append(sessions, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
