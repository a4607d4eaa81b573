package queries_test

import (
	"context"
	"time"

	"courier/internal/adapters/out/postgres/auditrepo"
	"courier/internal/adapters/out/postgres/branchrepo"
	"courier/internal/adapters/out/postgres/shipmentrepo"
	"courier/internal/adapters/out/postgres/userrepo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// queryHandlerSuite is the shared postgres fixture for the read-model
// handler suites. Each handler suite embeds it and gets a migrated
// database with empty tables per test.
type queryHandlerSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *queryHandlerSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&auditrepo.AuditLogDTO{},
		&branchrepo.BranchDTO{},
		&userrepo.UserDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *queryHandlerSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *queryHandlerSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, audit_logs, branches, users CASCADE").Error
	suite.Require().NoError(err)
}

// seedShipment inserts a shipment row with sensible defaults; mutate
// adjusts individual columns before the insert.
func (suite *queryHandlerSuite) seedShipment(mutate func(*shipmentrepo.ShipmentDTO)) shipmentrepo.ShipmentDTO {
	now := time.Now().UTC()
	dto := shipmentrepo.ShipmentDTO{
		ID:              uuid.New(),
		TrackingID:      "CRR-" + uuid.NewString()[:8],
		SenderName:      "Acme Traders",
		ReceiverName:    "Rita Vale",
		ReceiverPhone:   "5553334444",
		PickupAddress:   "12 Dock Road",
		DeliveryAddress: "7 Hill Street",
		Status:          "pending",
		DeliveryType:    "normal",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if mutate != nil {
		mutate(&dto)
	}

	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
	return dto
}

func (suite *queryHandlerSuite) seedAuditEntry(mutate func(*auditrepo.AuditLogDTO)) auditrepo.AuditLogDTO {
	dto := auditrepo.AuditLogDTO{
		ID:          uuid.New(),
		TrackingID:  "CRR-" + uuid.NewString()[:8],
		Action:      "created",
		Description: "Shipment booked",
		Timestamp:   time.Now().UTC(),
	}
	if mutate != nil {
		mutate(&dto)
	}

	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
	return dto
}

func floatVal(v float64) *float64 { return &v }

func stringVal(v string) *string { return &v }

func uuidVal(v uuid.UUID) *uuid.UUID { return &v }
