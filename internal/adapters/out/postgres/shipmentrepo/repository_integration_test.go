package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/adapters/out/postgres/shipmentrepo"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"

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
// ShipmentRepository using PostgreSQL containers to verify persistence behavior.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()

	testShipment := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()

	err := suite.repository.Add(ctx, testShipment)
	suite.Require().NoError(err)

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_RoundTripsAllFields() {
	ctx := context.Background()

	senderPhone, err := kernel.NewPhone("5551112222")
	suite.Require().NoError(err)
	receiverPhone, err := kernel.NewPhone("5553334444")
	suite.Require().NoError(err)

	branchID := kernel.NewUUID()
	bookedBy := kernel.NewUUID()
	weight := 12.5
	distance := 40.0
	paymentMethod := shipment.PaymentMethodCash

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := kernel.NewUUID()
	original, err := shipment.NewShipment(id, "CRR-20260828-0001", now, shipment.NewShipmentParams{
		SenderName:           "Acme Traders",
		SenderPhone:          &senderPhone,
		ReceiverName:         "Rita Vale",
		ReceiverPhone:        receiverPhone,
		PickupAddress:        "12 Dock Rd",
		DeliveryAddress:      "9 Hill St",
		BranchID:             &branchID,
		Weight:               &weight,
		Distance:             &distance,
		DeliveryType:         shipment.DeliveryTypeExpress,
		PaymentMethod:        &paymentMethod,
		Notes:                "fragile",
		ExpectedDeliveryDate: "2026-09-01",
		BookedBy:             &bookedBy,
	})
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrieved.ID())
	suite.Equal("CRR-20260828-0001", retrieved.TrackingID())
	suite.Equal("Acme Traders", retrieved.SenderName())
	suite.Require().NotNil(retrieved.SenderPhone())
	suite.True(senderPhone.IsEqual(*retrieved.SenderPhone()))
	suite.Equal("Rita Vale", retrieved.ReceiverName())
	suite.True(receiverPhone.IsEqual(retrieved.ReceiverPhone()))
	suite.Require().NotNil(retrieved.BranchID())
	suite.Equal(branchID, *retrieved.BranchID())
	suite.Equal(shipment.StatusPending, retrieved.Status())
	suite.Nil(retrieved.AssignedTo())
	suite.Require().NotNil(retrieved.Weight())
	suite.Equal(weight, *retrieved.Weight())
	suite.Require().NotNil(retrieved.Distance())
	suite.Equal(distance, *retrieved.Distance())
	suite.Nil(retrieved.Price())
	suite.Equal(shipment.DeliveryTypeExpress, retrieved.DeliveryType())
	suite.Require().NotNil(retrieved.PaymentMethod())
	suite.Equal(shipment.PaymentMethodCash, *retrieved.PaymentMethod())
	suite.Equal("fragile", retrieved.Notes())
	suite.Equal("2026-09-01", retrieved.ExpectedDeliveryDate())
	suite.Require().NotNil(retrieved.BookedBy())
	suite.Equal(bookedBy, *retrieved.BookedBy())
	suite.WithinDuration(now, retrieved.CreatedAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StatusProgression_Persisted() {
	ctx := context.Background()

	testShipment := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	now := time.Now().UTC()
	suite.Require().NoError(testShipment.ChangeStatus(shipment.StatusPickedUp, now))
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	retrieved, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusPickedUp, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_ClearedPrice_WritesNull() {
	ctx := context.Background()

	testShipment := suite.createTestShipment()
	price := 75.0
	testShipment.SetPrice(&price, time.Now().UTC())

	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	testShipment.SetPrice(nil, time.Now().UTC())
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	retrieved, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.Price())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NonExistentShipment_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestShipment())
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_ExistingShipment_Removed() {
	ctx := context.Background()

	testShipment := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	suite.Require().NoError(suite.repository.Delete(ctx, testShipment.ID()))
	suite.assertShipmentCount(0)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestTrackingID_Unique() {
	ctx := context.Background()

	first := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(1)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate, err := shipment.NewShipment(
		kernel.NewUUID(), first.TrackingID(), time.Now().UTC(), suite.testParams())
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.assertShipmentCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) testParams() shipment.NewShipmentParams {
	receiverPhone, err := kernel.NewPhone("5553334444")
	suite.Require().NoError(err)

	return shipment.NewShipmentParams{
		SenderName:      "Acme Traders",
		ReceiverName:    "Rita Vale",
		ReceiverPhone:   receiverPhone,
		PickupAddress:   "12 Dock Rd",
		DeliveryAddress: "9 Hill St",
	}
}

// createTestShipment creates a basic pending shipment with default values.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	id := kernel.NewUUID()
	testShipment, err := shipment.NewShipment(
		id, "CRR-"+id.String()[:8], time.Now().UTC(), suite.testParams())
	suite.Require().NoError(err)
	return testShipment
}

// assertShipmentCount verifies the number of shipments in the database.
func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
