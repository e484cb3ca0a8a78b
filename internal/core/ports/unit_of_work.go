package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary: every state-changing
// operation of the engine re-reads the entities it needs through repositories
// bound to one transaction, validates invariants against that fresh read, and
// commits all writes together or not at all.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current transaction.
	ShipmentRepository() ShipmentRepository

	// BatchRepository returns a BatchRepository bound to the current transaction.
	BatchRepository() BatchRepository

	// SessionRepository returns a SessionRepository bound to the current transaction.
	SessionRepository() SessionRepository

	// LedgerRepository returns a LedgerRepository bound to the current transaction.
	LedgerRepository() LedgerRepository

	// EventRepository returns an EventRepository bound to the current transaction.
	EventRepository() EventRepository

	// SequenceCounter returns a SequenceCounter bound to the current transaction.
	SequenceCounter() SequenceCounter
}
