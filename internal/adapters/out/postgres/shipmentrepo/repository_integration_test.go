package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/batchrepo"
	"logistics/internal/adapters/out/postgres/sessionrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers to verify persistence
// behavior, including nullable column round-trips and the session charge sum.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container          *postgres.PostgresContainer
	db                 *gorm.DB
	shipmentRepository *shipmentrepo.GormShipmentRepository
	batchRepository    *batchrepo.GormBatchRepository
	tracker            *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&batchrepo.BatchDTO{},
		&sessionrepo.SessionDTO{},
	))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments, batches, sessions").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.shipmentRepository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
	suite.batchRepository = batchrepo.NewGormBatchRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()

	testShipment := suite.createTestShipment(nil)
	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()

	err := suite.shipmentRepository.Add(ctx, testShipment)
	suite.Require().NoError(err)

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_RoundTripsAllFields() {
	ctx := context.Background()

	sessionID := kernel.NewUUID()
	original := suite.createTestShipment(&sessionID)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()

	err := suite.shipmentRepository.Add(ctx, original)
	suite.Require().NoError(err)

	retrieved, err := suite.shipmentRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Reference(), retrieved.Reference())
	suite.Equal(original.OriginAgencyID(), retrieved.OriginAgencyID())
	suite.Equal(original.DestinationAgencyID(), retrieved.DestinationAgencyID())
	suite.Equal(original.Sender().Name(), retrieved.Sender().Name())
	suite.Equal(original.Sender().Phone(), retrieved.Sender().Phone())
	suite.Equal(original.Receiver().Name(), retrieved.Receiver().Name())
	suite.Equal(original.NatureOfGoods(), retrieved.NatureOfGoods())
	suite.True(original.DeclaredValue().IsEqual(retrieved.DeclaredValue()))
	suite.True(original.InsuranceAmount().IsEqual(retrieved.InsuranceAmount()))
	suite.True(original.TransportFee().IsEqual(retrieved.TransportFee()))
	suite.Equal(original.PaymentType(), retrieved.PaymentType())
	suite.Equal(original.PaymentStatus(), retrieved.PaymentStatus())
	suite.Equal(shipment.Created, retrieved.Status())
	suite.Nil(retrieved.BatchID())
	suite.Require().NotNil(retrieved.SessionID())
	suite.True(sessionID.IsEqual(*retrieved.SessionID()))
	suite.Nil(retrieved.CollectedAtDestination())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.shipmentRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_RemovedFromBatch_WritesBatchIDBackToNull() {
	ctx := context.Background()

	testBatch := suite.createTestBatch()
	suite.tracker.On("TrackAggregate", testBatch.ID(), testBatch).Once()
	suite.Require().NoError(suite.batchRepository.Add(ctx, testBatch))

	testShipment := suite.createTestShipment(nil)
	suite.Require().NoError(testShipment.AssignToBatch(testBatch.ID()))
	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Times(2)

	suite.Require().NoError(suite.shipmentRepository.Add(ctx, testShipment))

	suite.Require().NoError(testShipment.RemoveFromBatch(testBatch.ID()))
	suite.Require().NoError(suite.shipmentRepository.Update(ctx, testShipment))

	retrieved, err := suite.shipmentRepository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.BatchID(), "batch_id must round-trip back to NULL")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NonExistentShipment_ReturnsError() {
	ctx := context.Background()

	err := suite.shipmentRepository.Update(ctx, suite.createTestShipment(nil))
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllInBatch_ReturnsOnlyMembers() {
	ctx := context.Background()

	testBatch := suite.createTestBatch()
	suite.tracker.On("TrackAggregate", testBatch.ID(), testBatch).Once()
	suite.Require().NoError(suite.batchRepository.Add(ctx, testBatch))

	member1 := suite.createTestShipment(nil)
	suite.Require().NoError(member1.AssignToBatch(testBatch.ID()))
	member2 := suite.createTestShipment(nil)
	suite.Require().NoError(member2.AssignToBatch(testBatch.ID()))
	outsider := suite.createTestShipment(nil)

	for _, s := range []*shipment.Shipment{member1, member2, outsider} {
		suite.tracker.On("TrackAggregate", s.ID(), s).Once()
		suite.Require().NoError(suite.shipmentRepository.Add(ctx, s))
	}

	members, err := suite.shipmentRepository.GetAllInBatch(ctx, testBatch.ID())
	suite.Require().NoError(err)
	suite.Len(members, 2)
	for _, m := range members {
		suite.Require().NotNil(m.BatchID())
		suite.True(testBatch.ID().IsEqual(*m.BatchID()))
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSumChargesBySession_SumsFeesAndInsurance() {
	ctx := context.Background()

	sessionID := kernel.NewUUID()
	otherSessionID := kernel.NewUUID()

	// fee 1500 + insurance 200 each, two shipments in the session
	inSession1 := suite.createTestShipment(&sessionID)
	inSession2 := suite.createTestShipment(&sessionID)
	outOfSession := suite.createTestShipment(&otherSessionID)

	for _, s := range []*shipment.Shipment{inSession1, inSession2, outOfSession} {
		suite.tracker.On("TrackAggregate", s.ID(), s).Once()
		suite.Require().NoError(suite.shipmentRepository.Add(ctx, s))
	}

	total, err := suite.shipmentRepository.SumChargesBySession(ctx, sessionID)
	suite.Require().NoError(err)

	expected := inSession1.TotalCharges().Add(inSession2.TotalCharges())
	suite.True(expected.IsEqual(total), "expected %s, got %s", expected, total)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestSumChargesBySession_EmptySession_ReturnsZero() {
	ctx := context.Background()

	total, err := suite.shipmentRepository.SumChargesBySession(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.True(total.IsZero())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestShipment creates an origin-paid shipment with declared value
// 10000, insurance rate 0.02 and transport fee 1500.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment(sessionID *kernel.UUID) *shipment.Shipment {
	sender, err := shipment.NewParty("Kouame Yao", "+2250701020304")
	suite.Require().NoError(err)
	receiver, err := shipment.NewParty("Adjoua Brou", "+2250705060708")
	suite.Require().NoError(err)

	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(),
		"KMT-ABJ-C003-00042",
		kernel.NewUUID(),
		kernel.NewUUID(),
		sender,
		receiver,
		"Spare parts",
		kernel.NewMoney(10000),
		decimal.NewFromFloat(0.02),
		kernel.NewMoney(1500),
		shipment.PaymentAtOrigin,
		sessionID,
		kernel.NewUUID(),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	return testShipment
}

// createTestBatch creates a DRAFT batch for a morning trip.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestBatch() *batch.Batch {
	tripKey, err := kernel.NewTripKey("ABJ-BKE", "08h", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	testBatch, err := batch.NewBatch(
		kernel.NewUUID(),
		kernel.NewUUID(),
		tripKey,
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	return testBatch
}

func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
