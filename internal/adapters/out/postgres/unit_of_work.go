// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. Every state-changing operation of the engine runs inside one unit
// of work: repositories obtained from it share a single database transaction,
// so a departure that flips a batch and forty shipments either commits whole
// or not at all.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"logistics/internal/adapters/out/postgres/batchrepo"
	"logistics/internal/adapters/out/postgres/counterrepo"
	"logistics/internal/adapters/out/postgres/eventrepo"
	"logistics/internal/adapters/out/postgres/ledgerrepo"
	"logistics/internal/adapters/out/postgres/sessionrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the engine's
// repositories and tracks the aggregates written through them.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin twice on the same instance is
// safe and does not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ShipmentRepository returns a shipment repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// BatchRepository returns a batch repository bound to the current transaction.
func (uow *GormUnitOfWork) BatchRepository() ports.BatchRepository {
	return batchrepo.NewGormBatchRepository(uow.conn(), uow)
}

// SessionRepository returns a session repository bound to the current
// transaction.
func (uow *GormUnitOfWork) SessionRepository() ports.SessionRepository {
	return sessionrepo.NewGormSessionRepository(uow.conn(), uow)
}

// LedgerRepository returns a ledger repository bound to the current
// transaction.
func (uow *GormUnitOfWork) LedgerRepository() ports.LedgerRepository {
	return ledgerrepo.NewGormLedgerRepository(uow.conn())
}

// EventRepository returns a shipment event repository bound to the current
// transaction.
func (uow *GormUnitOfWork) EventRepository() ports.EventRepository {
	return eventrepo.NewGormEventRepository(uow.conn())
}

// SequenceCounter returns the agency sequence counter bound to the current
// transaction, so a minted number rolls back with the shipment that consumed
// it.
func (uow *GormUnitOfWork) SequenceCounter() ports.SequenceCounter {
	return counterrepo.NewGormSequenceCounter(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
