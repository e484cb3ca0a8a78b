// Package queries contains read-only operations over the persistence model.
// Query handlers bypass the aggregates and read with raw SQL, following the
// CQRS split: commands go through the domain, reports go straight to the
// tables.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetSessionReportQueryIsNotConstructed = errors.New(
	"GetSessionReportQuery must be created via NewGetSessionReportQuery constructor",
)

// GetSessionReportQuery retrieves one cash session with its full ledger:
// the reconciliation header and every movement, oldest first.
type GetSessionReportQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSessionReportQuery creates a query for a session's cash report.
func NewGetSessionReportQuery(sessionID kernel.UUID) (GetSessionReportQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionReportQuery{}, err
	}

	return GetSessionReportQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSessionReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionReportQueryIsNotConstructed)
}

// SessionID returns the session to report on.
func (q GetSessionReportQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetSessionReportQueryResponse is the reconciliation view of one session.
// Amounts are decimal strings; the money columns are nullable because they
// only exist once the session reaches the corresponding state.
type GetSessionReportQueryResponse struct {
	ID             kernel.UUID
	AgencyID       kernel.UUID
	AgentID        kernel.UUID
	AgentCode      string
	Status         string
	CreatedAt      time.Time
	ClosedAt       *time.Time
	ExpectedAmount *string
	CountedAmount  *string
	Difference     *string
	Entries        []SessionLedgerEntryResponse
}

// SessionLedgerEntryResponse is one cash movement in the report.
type SessionLedgerEntryResponse struct {
	ID         kernel.UUID
	ShipmentID kernel.UUID
	EntryType  string
	Amount     string
	CreatedAt  time.Time
}
