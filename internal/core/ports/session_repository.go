package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
)

// SessionRepository defines persistence operations for the Session aggregate.
type SessionRepository interface {
	// Add saves a new session.
	Add(ctx context.Context, aggregate *session.Session) error

	// Update saves an existing session.
	Update(ctx context.Context, aggregate *session.Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// GetOpenByAgent retrieves the agent's PENDING or ACTIVE session, or an
	// ObjectNotFoundError when none exists. Called inside the same transaction
	// as the session create so two concurrent opens cannot both succeed.
	GetOpenByAgent(ctx context.Context, agentID kernel.UUID) (*session.Session, error)
}

// LedgerRepository defines persistence for ledger entries. The ledger is
// append-only: there is intentionally no update or delete operation, so the
// auditability invariant holds at the interface level, not by convention.
type LedgerRepository interface {
	// Add appends one ledger entry.
	Add(ctx context.Context, entry session.LedgerEntry) error

	// GetAllBySession retrieves a session's entries, oldest first.
	GetAllBySession(ctx context.Context, sessionID kernel.UUID) ([]session.LedgerEntry, error)
}
