package cmd

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/rediscache"
	"logistics/internal/core/application/access"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	checker    commands.CapabilityChecker
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	cache := rediscache.NewRedisCache(redisClient)
	ttl := time.Duration(config.AccessTTLSec) * time.Second

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		checker:    access.NewResolver(cache, services.Plan(config.CompanyPlan), ttl),
	}
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) batchUoWFactory() commands.BatchUoWFactory {
	return FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateOpenSessionCommandHandler() commands.OpenSessionCommandHandler {
	return commands.NewOpenSessionCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateActivateSessionCommandHandler() commands.ActivateSessionCommandHandler {
	return commands.NewActivateSessionCommandHandler(c.sessionUoWFactory(), c.checker)
}

func (c *CompositionRoot) CreateCloseSessionCommandHandler() commands.CloseSessionCommandHandler {
	return commands.NewCloseSessionCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateValidateSessionCommandHandler() commands.ValidateSessionCommandHandler {
	return commands.NewValidateSessionCommandHandler(c.sessionUoWFactory(), c.checker)
}

func (c *CompositionRoot) CreateRecordLedgerEntryCommandHandler() commands.RecordLedgerEntryCommandHandler {
	return commands.NewRecordLedgerEntryCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateCreateBatchCommandHandler() commands.CreateBatchCommandHandler {
	return commands.NewCreateBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateAddShipmentToBatchCommandHandler() commands.AddShipmentToBatchCommandHandler {
	return commands.NewAddShipmentToBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateRemoveShipmentFromBatchCommandHandler() commands.RemoveShipmentFromBatchCommandHandler {
	return commands.NewRemoveShipmentFromBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateMarkBatchReadyCommandHandler() commands.MarkBatchReadyCommandHandler {
	return commands.NewMarkBatchReadyCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDepartureCommandHandler() commands.ConfirmDepartureCommandHandler {
	return commands.NewConfirmDepartureCommandHandler(c.batchUoWFactory(), c.checker)
}

func (c *CompositionRoot) CreateConfirmEscaleArrivalCommandHandler() commands.ConfirmEscaleArrivalCommandHandler {
	return commands.NewConfirmEscaleArrivalCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateCloseBatchCommandHandler() commands.CloseBatchCommandHandler {
	return commands.NewCloseBatchCommandHandler(c.batchUoWFactory(), c.checker)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateRecordShipmentTransitionCommandHandler() commands.RecordShipmentTransitionCommandHandler {
	return commands.NewRecordShipmentTransitionCommandHandler(c.shipmentUoWFactory(), c.checker)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateGetSessionReportQueryHandler() queries.GetSessionReportQueryHandler {
	return queries.NewGetSessionReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentHistoryQueryHandler() queries.GetShipmentHistoryQueryHandler {
	return queries.NewGetShipmentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatchManifestQueryHandler() queries.GetBatchManifestQueryHandler {
	return queries.NewGetBatchManifestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnvalidatedSessionsQueryHandler() queries.GetUnvalidatedSessionsQueryHandler {
	return queries.NewGetUnvalidatedSessionsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every handler the HTTP server needs.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		OpenSession:             c.CreateOpenSessionCommandHandler(),
		ActivateSession:         c.CreateActivateSessionCommandHandler(),
		CloseSession:            c.CreateCloseSessionCommandHandler(),
		ValidateSession:         c.CreateValidateSessionCommandHandler(),
		RecordLedgerEntry:       c.CreateRecordLedgerEntryCommandHandler(),
		CreateBatch:             c.CreateCreateBatchCommandHandler(),
		AddShipmentToBatch:      c.CreateAddShipmentToBatchCommandHandler(),
		RemoveShipmentFromBatch: c.CreateRemoveShipmentFromBatchCommandHandler(),
		MarkBatchReady:          c.CreateMarkBatchReadyCommandHandler(),
		ConfirmDeparture:        c.CreateConfirmDepartureCommandHandler(),
		ConfirmEscaleArrival:    c.CreateConfirmEscaleArrivalCommandHandler(),
		CloseBatch:              c.CreateCloseBatchCommandHandler(),
		CreateShipment:          c.CreateCreateShipmentCommandHandler(),
		RecordTransition:        c.CreateRecordShipmentTransitionCommandHandler(),
		ConfirmPickup:           c.CreateConfirmPickupCommandHandler(),
		GetSessionReport:        c.CreateGetSessionReportQueryHandler(),
		GetShipmentHistory:      c.CreateGetShipmentHistoryQueryHandler(),
		GetBatchManifest:        c.CreateGetBatchManifestQueryHandler(),
		GetUnvalidatedSessions:  c.CreateGetUnvalidatedSessionsQueryHandler(),
	}
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}
