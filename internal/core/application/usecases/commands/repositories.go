// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// CapabilityChecker gates privileged operations. Handlers for dispatch,
// closure, activation, validation and claim processing consult it before
// touching any aggregate, so an unauthorized caller never acquires locks.
type CapabilityChecker interface {
	Require(ctx context.Context, role services.Role, capability services.Capability, operation string) error
}

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// BatchRepoFactory provides access to the batch repository within a transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// EventRepoFactory provides access to the shipment event repository within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// SequenceCounterFactory provides access to the agency sequence counter
	// within a transaction, so a minted number commits or rolls back together
	// with the shipment that consumed it.
	SequenceCounterFactory interface {
		SequenceCounter() ports.SequenceCounter
	}

	// SessionUoW manages transactions for cash session operations. The
	// shipment repository is included because closing a session computes the
	// expected amount from the shipments recorded under it.
	SessionUoW interface {
		TxManager
		SessionRepoFactory
		LedgerRepoFactory
		ShipmentRepoFactory
	}

	// SessionUoWFactory creates new session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}

	// ShipmentUoW manages transactions for shipment lifecycle operations:
	// creation consumes a sequence number and reads the agent's session,
	// transitions append audit events, and destination pickups post ledger
	// entries.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		EventRepoFactory
		SessionRepoFactory
		LedgerRepoFactory
		SequenceCounterFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// BatchUoW manages transactions spanning a batch and its member
	// shipments. Departure flips every member in the same transaction, so
	// either the whole convoy leaves or none of it does.
	BatchUoW interface {
		TxManager
		BatchRepoFactory
		ShipmentRepoFactory
		EventRepoFactory
	}

	// BatchUoWFactory creates new batch unit of work instances.
	BatchUoWFactory interface {
		Create() BatchUoW
	}
)
