package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetUnvalidatedSessionsQueryIsNotConstructed = errors.New(
	"GetUnvalidatedSessionsQuery must be created via NewGetUnvalidatedSessionsQuery constructor",
)

// GetUnvalidatedSessionsQuery retrieves the CLOSED sessions of one agency
// that still await accountant reconciliation. This is the accountant's
// morning worklist.
type GetUnvalidatedSessionsQuery struct {
	agencyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnvalidatedSessionsQuery creates a query for an agency's
// unreconciled sessions.
func NewGetUnvalidatedSessionsQuery(agencyID kernel.UUID) (GetUnvalidatedSessionsQuery, error) {
	if err := agencyID.Validate(); err != nil {
		return GetUnvalidatedSessionsQuery{}, err
	}

	return GetUnvalidatedSessionsQuery{
		agencyID: agencyID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnvalidatedSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnvalidatedSessionsQueryIsNotConstructed)
}

// AgencyID returns the agency to list sessions for.
func (q GetUnvalidatedSessionsQuery) AgencyID() kernel.UUID {
	return q.agencyID
}

// GetUnvalidatedSessionsQueryResponse is one closed, unreconciled session.
type GetUnvalidatedSessionsQueryResponse struct {
	ID             kernel.UUID
	AgentID        kernel.UUID
	AgentCode      string
	ClosedAt       *time.Time
	ExpectedAmount *string
}
