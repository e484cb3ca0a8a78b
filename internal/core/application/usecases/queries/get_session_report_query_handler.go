package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// GetSessionReportQueryHandler builds the cash report for one session.
type GetSessionReportQueryHandler struct {
	db *gorm.DB
}

// NewGetSessionReportQueryHandler creates a handler for session reports.
func NewGetSessionReportQueryHandler(db *gorm.DB) GetSessionReportQueryHandler {
	return GetSessionReportQueryHandler{db: db}
}

// Handle executes the query: the session header first, then its ledger
// entries oldest first.
func (h GetSessionReportQueryHandler) Handle(
	ctx context.Context,
	query GetSessionReportQuery,
) (GetSessionReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionReportQueryResponse{}, err
	}

	response, err := h.loadHeader(ctx, query)
	if err != nil {
		return GetSessionReportQueryResponse{}, err
	}

	entries, err := h.loadEntries(ctx, query)
	if err != nil {
		return GetSessionReportQueryResponse{}, err
	}
	response.Entries = entries

	return response, nil
}

func (h GetSessionReportQueryHandler) loadHeader(
	ctx context.Context,
	query GetSessionReportQuery,
) (GetSessionReportQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			agency_id,
			agent_id,
			agent_code,
			status,
			created_at,
			closed_at,
			expected_amount,
			counted_amount,
			difference
		FROM sessions
		WHERE id = ?
	`, query.SessionID().Bytes()).Rows()
	if err != nil {
		return GetSessionReportQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetSessionReportQueryResponse{}, err
		}
		return GetSessionReportQueryResponse{},
			errs.NewObjectNotFoundError("sessionId", query.SessionID())
	}

	var response GetSessionReportQueryResponse
	var id, agencyID, agentID uuid.UUID
	var closedAt sql.NullTime
	var expected, counted, difference decimal.NullDecimal

	if err = rows.Scan(
		&id,
		&agencyID,
		&agentID,
		&response.AgentCode,
		&response.Status,
		&response.CreatedAt,
		&closedAt,
		&expected,
		&counted,
		&difference,
	); err != nil {
		return GetSessionReportQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetSessionReportQueryResponse{}, err
	}
	if response.AgencyID, err = kernel.UUIDFromBytes(agencyID[:]); err != nil {
		return GetSessionReportQueryResponse{}, err
	}
	if response.AgentID, err = kernel.UUIDFromBytes(agentID[:]); err != nil {
		return GetSessionReportQueryResponse{}, err
	}

	if closedAt.Valid {
		t := closedAt.Time
		response.ClosedAt = &t
	}
	response.ExpectedAmount = nullDecimalString(expected)
	response.CountedAmount = nullDecimalString(counted)
	response.Difference = nullDecimalString(difference)

	return response, rows.Err()
}

func (h GetSessionReportQueryHandler) loadEntries(
	ctx context.Context,
	query GetSessionReportQuery,
) ([]SessionLedgerEntryResponse, error) {
	entries := make([]SessionLedgerEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			entry_type,
			amount,
			created_at
		FROM ledger_entries
		WHERE session_id = ?
		ORDER BY created_at, id
	`, query.SessionID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry SessionLedgerEntryResponse
		var id, shipmentID uuid.UUID
		var amount decimal.Decimal
		var createdAt time.Time

		if err = rows.Scan(&id, &shipmentID, &entry.EntryType, &amount, &createdAt); err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.ShipmentID, err = kernel.UUIDFromBytes(shipmentID[:]); err != nil {
			return nil, err
		}
		entry.Amount = amount.String()
		entry.CreatedAt = createdAt
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func nullDecimalString(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}
