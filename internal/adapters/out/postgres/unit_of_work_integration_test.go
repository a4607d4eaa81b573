package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/postgres/auditrepo"
	"courier/internal/adapters/out/postgres/branchrepo"
	"courier/internal/adapters/out/postgres/invoicerepo"
	"courier/internal/adapters/out/postgres/podrepo"
	"courier/internal/adapters/out/postgres/shipmentrepo"
	"courier/internal/adapters/out/postgres/userrepo"
	"courier/internal/core/domain/model/auditlog"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&auditrepo.AuditLogDTO{},
		&podrepo.PodDTO{},
		&invoicerepo.InvoiceDTO{},
		&branchrepo.BranchDTO{},
		&userrepo.UserDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, audit_logs, pods, invoices, branches, users").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.AuditLogRepository())
	suite.NotNil(uow2.PodRepository())
	suite.NotNil(uow2.InvoiceRepository())
	suite.NotNil(uow2.BranchRepository())
	suite.NotNil(uow2.UserDirectory())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_ShipmentWithAuditEntry verifies the core write pattern: every
// shipment mutation lands together with its audit entry or not at all.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentWithAuditEntry() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()
	entry := createAuditEntry(testShipment, auditlog.ActionCreated, "Shipment booked")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.AuditLogRepository().Append(ctx, entry)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.TrackingID(), retrieved.TrackingID())

	suite.Equal(int64(1), suite.countRows(&auditrepo.AuditLogDTO{}))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards shipment and
// audit writes together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()
	entry := createAuditEntry(testShipment, auditlog.ActionCreated, "Shipment booked")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.AuditLogRepository().Append(ctx, entry)
	suite.Require().NoError(err)

	// Visible inside the transaction
	_, err = uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().Error(err, "Shipment should not exist after rollback")

	suite.Equal(int64(0), suite.countRows(&auditrepo.AuditLogDTO{}))
}

// TestUnitOfWork_AuditSurvivesShipmentDeletion verifies that deleting a
// shipment keeps its audit trail readable. There is deliberately no foreign
// key between audit_logs and shipments.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AuditSurvivesShipmentDeletion() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()
	created := createAuditEntry(testShipment, auditlog.ActionCreated, "Shipment booked")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(uow.AuditLogRepository().Append(ctx, created))
	suite.Require().NoError(uow.Commit(ctx))

	// The delete handler appends its entry before removing the row, in the
	// same transaction
	deleteUow := suite.factory.Create()
	suite.Require().NoError(deleteUow.Begin(ctx))

	deleted := createAuditEntry(testShipment, auditlog.ActionDeleted, "Shipment deleted")
	suite.Require().NoError(deleteUow.AuditLogRepository().Append(ctx, deleted))
	suite.Require().NoError(deleteUow.ShipmentRepository().Delete(ctx, testShipment.ID()))
	suite.Require().NoError(deleteUow.Commit(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.Equal(int64(2), suite.countRows(&auditrepo.AuditLogDTO{}))

	var trackingIDs []string
	err = suite.db.Model(&auditrepo.AuditLogDTO{}).Pluck("tracking_id", &trackingIDs).Error
	suite.Require().NoError(err)
	for _, trackingID := range trackingIDs {
		suite.Equal(testShipment.TrackingID(), trackingID)
	}
}

// TestUnitOfWork_RepositoryIsolation verifies that transactions from different
// unit of work instances do not see each other's uncommitted changes.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	shipment1 := createTestShipment()
	shipment2 := createTestShipment()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.ShipmentRepository().Add(ctx, shipment1))
	suite.Require().NoError(uow2.ShipmentRepository().Add(ctx, shipment2))

	_, err := uow1.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().NoError(err, "UOW1 should see shipment1")

	_, err = uow1.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().Error(err, "UOW1 should not see shipment2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().NoError(err, "Shipment1 should persist after commit")

	_, err = newUow.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().Error(err, "Shipment2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies repositories work without explicit
// transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()

	err := uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())
}

// TestUnitOfWork_DeliveryWorkflow exercises the complete delivery path:
// assignment, status progression, proof of delivery capture and the final
// delivered state, all through unit of work boundaries.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryWorkflow() {
	ctx := context.Background()
	now := time.Now().UTC()

	testShipment := createTestShipment()
	agentID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(uow.Commit(ctx))

	// Assign and progress to out for delivery
	progressUow := suite.factory.Create()
	suite.Require().NoError(progressUow.Begin(ctx))

	suite.Require().NoError(testShipment.Assign(agentID, now))
	suite.Require().NoError(testShipment.ChangeStatus(shipment.StatusOutForDelivery, now))
	suite.Require().NoError(progressUow.ShipmentRepository().Update(ctx, testShipment))
	suite.Require().NoError(progressUow.Commit(ctx))

	// Complete delivery with proof
	deliverUow := suite.factory.Create()
	suite.Require().NoError(deliverUow.Begin(ctx))

	podID := kernel.NewUUID()
	proof, err := shipment.NewProofOfDelivery(
		podID, testShipment.ID(), "Rita Vale", "blob://signature", "", nil, now)
	suite.Require().NoError(err)
	suite.Require().NoError(deliverUow.PodRepository().Add(ctx, proof))

	suite.Require().NoError(testShipment.CompleteDelivery(podID, now))
	suite.Require().NoError(deliverUow.ShipmentRepository().Update(ctx, testShipment))
	suite.Require().NoError(deliverUow.Commit(ctx))

	// Verify final state with a fresh unit of work
	newUow := suite.factory.Create()
	retrieved, err := newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusDelivered, retrieved.Status())
	suite.Require().NotNil(retrieved.PodID())
	suite.Equal(podID, *retrieved.PodID())

	retrievedProof, err := newUow.PodRepository().Get(ctx, podID)
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrievedProof.ShipmentID())
	suite.Equal("Rita Vale", retrievedProof.SigneeName())
}

// TestUnitOfWork_UserDirectory verifies agent resolution against the users table.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UserDirectory() {
	ctx := context.Background()

	agentID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&userrepo.UserDTO{
		ID: agentID.Bytes(), Name: "Sam Porter", Role: "agent", Phone: "5550009999",
	}).Error)
	suite.Require().NoError(suite.db.Create(&userrepo.UserDTO{
		ID: customerID.Bytes(), Name: "Jane Doe", Role: "customer", Phone: "5550001111",
	}).Error)

	uow := suite.factory.Create()

	agent, err := uow.UserDirectory().GetAgent(ctx, agentID)
	suite.Require().NoError(err)
	suite.Equal("Sam Porter", agent.Name)
	suite.Equal("5550009999", agent.Phone)

	_, err = uow.UserDirectory().GetAgent(ctx, customerID)
	suite.Require().Error(err, "Non-agent users should not resolve as agents")

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(model interface{}) int64 {
	var count int64
	err := suite.db.Model(model).Count(&count).Error
	suite.Require().NoError(err)
	return count
}

// createTestShipment creates a valid pending shipment for testing purposes.
func createTestShipment() *shipment.Shipment {
	id := kernel.NewUUID()
	receiverPhone, _ := kernel.NewPhone("5553334444")
	testShipment, _ := shipment.NewShipment(id, "CRR-"+id.String()[:8], time.Now().UTC(),
		shipment.NewShipmentParams{
			SenderName:      "Acme Traders",
			ReceiverName:    "Rita Vale",
			ReceiverPhone:   receiverPhone,
			PickupAddress:   "12 Dock Rd",
			DeliveryAddress: "9 Hill St",
		})
	return testShipment
}

// createAuditEntry creates an audit entry for the given shipment.
func createAuditEntry(s *shipment.Shipment, action auditlog.Action, description string) *auditlog.Entry {
	shipmentID := s.ID()
	entry, _ := auditlog.NewEntry(
		kernel.NewUUID(), &shipmentID, s.TrackingID(), action, description, nil, time.Now().UTC())
	return entry
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
