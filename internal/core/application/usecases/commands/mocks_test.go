package commands_test

import (
	"context"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/auditlog"
	"courier/internal/core/domain/model/branch"
	"courier/internal/core/domain/model/invoice"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"

	"github.com/stretchr/testify/mock"
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

func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuditLogRepository struct{ mock.Mock }

func (m *MockAuditLogRepository) Append(ctx context.Context, entry *auditlog.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockPodRepository struct{ mock.Mock }

func (m *MockPodRepository) Add(ctx context.Context, pod *shipment.ProofOfDelivery) error {
	args := m.Called(ctx, pod)
	return args.Error(0)
}

func (m *MockPodRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.ProofOfDelivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.ProofOfDelivery), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

type MockBranchRepository struct{ mock.Mock }

func (m *MockBranchRepository) Add(ctx context.Context, office *branch.Branch) error {
	args := m.Called(ctx, office)
	return args.Error(0)
}

func (m *MockBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*branch.Branch), args.Error(1)
}

func (m *MockBranchRepository) GetByName(ctx context.Context, name string) (*branch.Branch, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*branch.Branch), args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) GetAgent(ctx context.Context, id kernel.UUID) (ports.AgentRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.AgentRecord), args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) AuditLogRepository() ports.AuditLogRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditLogRepository)
}

func (m *MockUoW) PodRepository() ports.PodRepository {
	args := m.Called()
	return args.Get(0).(ports.PodRepository)
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

func (m *MockUoW) BranchRepository() ports.BranchRepository {
	args := m.Called()
	return args.Get(0).(ports.BranchRepository)
}

func (m *MockUoW) UserDirectory() ports.UserDirectory {
	args := m.Called()
	return args.Get(0).(ports.UserDirectory)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

type MockBranchUoWFactory struct{ mock.Mock }

func (m *MockBranchUoWFactory) Create() commands.BranchUoW {
	args := m.Called()
	return args.Get(0).(commands.BranchUoW)
}

type MockBlobStore struct{ mock.Mock }

func (m *MockBlobStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Get(ctx context.Context, ref string) ([]byte, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Send(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func adminActor() principal.Principal {
	p, _ := principal.New(kernel.NewUUID(), principal.RoleAdmin, "Ops Admin", "")
	return p
}

func agentActor(id kernel.UUID) principal.Principal {
	p, _ := principal.New(id, principal.RoleAgent, "Field Agent", "")
	return p
}

func customerActor() principal.Principal {
	p, _ := principal.New(kernel.NewUUID(), principal.RoleCustomer, "Jane Doe", "5550001111")
	return p
}

func validShipmentParams() shipment.NewShipmentParams {
	phone, _ := kernel.NewPhone("5553334444")
	return shipment.NewShipmentParams{
		SenderName:      "Acme Ltd",
		ReceiverName:    "Jane Doe",
		ReceiverPhone:   phone,
		PickupAddress:   "1 Depot Rd",
		DeliveryAddress: "9 Harbor St",
	}
}

func testShipment() *shipment.Shipment {
	s, err := shipment.NewShipment(kernel.NewUUID(), "CRR-TEST-0001", time.Now().UTC(), validShipmentParams())
	if err != nil {
		panic(err)
	}
	return s
}
