package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllInBatch(ctx context.Context, batchID kernel.UUID) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) SumChargesBySession(ctx context.Context, sessionID kernel.UUID) (kernel.Money, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBatchRepository) Update(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.Batch), args.Error(1)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) GetOpenByAgent(ctx context.Context, agentID kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Add(ctx context.Context, e session.LedgerEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetAllBySession(_ context.Context, _ kernel.UUID) ([]session.LedgerEntry, error) {
	return nil, errors.New("not implemented in mock")
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Add(ctx context.Context, e shipment.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) GetAllByShipment(_ context.Context, _ kernel.UUID) ([]shipment.Event, error) {
	return nil, errors.New("not implemented in mock")
}

type MockSequenceCounter struct{ mock.Mock }

func (m *MockSequenceCounter) Next(ctx context.Context, agencyID kernel.UUID) (int64, error) {
	args := m.Called(ctx, agencyID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCapabilityChecker struct{ mock.Mock }

func (m *MockCapabilityChecker) Require(
	ctx context.Context, role services.Role, capability services.Capability, operation string,
) error {
	args := m.Called(ctx, role, capability, operation)
	return args.Error(0)
}

// txMock implements the TxManager part shared by every unit of work mock.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSessionUoW struct{ txMock }

func (m *MockSessionUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

func (m *MockSessionUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

func (m *MockSessionUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockSessionUoWFactory struct{ mock.Mock }

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	args := m.Called()
	return args.Get(0).(commands.SessionUoW)
}

type MockShipmentUoW struct{ txMock }

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockShipmentUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

func (m *MockShipmentUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

func (m *MockShipmentUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

func (m *MockShipmentUoW) SequenceCounter() ports.SequenceCounter {
	args := m.Called()
	return args.Get(0).(ports.SequenceCounter)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockBatchUoW struct{ txMock }

func (m *MockBatchUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}

func (m *MockBatchUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockBatchUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

type MockBatchUoWFactory struct{ mock.Mock }

func (m *MockBatchUoWFactory) Create() commands.BatchUoW {
	args := m.Called()
	return args.Get(0).(commands.BatchUoW)
}

func insuranceRate() decimal.Decimal {
	return decimal.NewFromFloat(0.02)
}

func activeSession(agentCode string) *session.Session {
	s, err := session.NewSession(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), agentCode, time.Now().UTC())
	if err != nil {
		panic(err)
	}
	if err = s.Activate(kernel.NewUUID(), time.Now().UTC()); err != nil {
		panic(err)
	}
	return s
}

func readyBatchWith(shipmentIDs ...kernel.UUID) *batch.Batch {
	b, err := batch.NewBatch(
		kernel.NewUUID(), kernel.NewUUID(), "ABJ-BKE_08h_2026-03-14",
		kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	if err != nil {
		panic(err)
	}
	for _, id := range shipmentIDs {
		if err = b.AddShipment(id); err != nil {
			panic(err)
		}
	}
	if len(shipmentIDs) > 0 {
		if err = b.MarkReady(); err != nil {
			panic(err)
		}
	}
	return b
}

func storedShipmentInBatch(t *testing.T, batchID kernel.UUID) *shipment.Shipment {
	t.Helper()
	sender, _ := shipment.NewParty("Kouame Yao", "+2250701020304")
	receiver, _ := shipment.NewParty("Adjoua Brou", "")
	origin := kernel.NewUUID()
	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), "KMT-ABJ-C003-00043", origin, kernel.NewUUID(),
		sender, receiver, "textiles",
		kernel.NewMoney(5000), insuranceRate(), kernel.NewMoney(100), kernel.NewMoney(1000),
		shipment.PaymentAtOrigin, shipment.PaymentSettled, shipment.Stored,
		origin, &batchID, nil, kernel.NewUUID(), time.Now().UTC(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func batchedShipment(batchID, destinationAgencyID kernel.UUID) *shipment.Shipment {
	sender, _ := shipment.NewParty("Kouame Yao", "+2250701020304")
	receiver, _ := shipment.NewParty("Adjoua Brou", "")
	s, err := shipment.NewShipment(
		kernel.NewUUID(), "KMT-ABJ-C003-00042", kernel.NewUUID(), destinationAgencyID,
		sender, receiver, "spare parts",
		kernel.NewMoney(10000), insuranceRate(), kernel.NewMoney(1500),
		shipment.PaymentAtOrigin, nil, kernel.NewUUID(), time.Now().UTC())
	if err != nil {
		panic(err)
	}
	if err = s.AssignToBatch(batchID); err != nil {
		panic(err)
	}
	return s
}
