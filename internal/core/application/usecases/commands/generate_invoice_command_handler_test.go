package commands_test

import (
	"strings"
	"testing"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/invoice"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGenerateInvoiceHandler(factory commands.InvoiceUoWFactory) commands.GenerateInvoiceCommandHandler {
	return commands.NewGenerateInvoiceCommandHandler(
		factory,
		services.NewAccessPolicy(),
		services.NewIdentifierGenerator(),
	)
}

func TestGenerateInvoiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := testShipment()
	price := 125.0
	target.SetPrice(&price, time.Now().UTC())

	cmd, err := commands.NewGenerateInvoiceCommand(target.ID(), adminActor())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	auditRepo := new(MockAuditLogRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	var generated *invoice.Invoice
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).
			Run(func(args mock.Arguments) {
				generated = args.Get(1).(*invoice.Invoice)
			}).Return(nil).Once(),
		shipmentRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*auditlog.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGenerateInvoiceHandler(factory)
	invoiceID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, generated)
	assert.True(t, invoiceID.IsEqual(generated.ID()))
	assert.True(t, strings.HasPrefix(generated.InvoiceNumber(), "INV-"))
	assert.InDelta(t, 125.0, generated.Amount(), 0.001)
	assert.Equal(t, invoice.StatusUnpaid, generated.Status())
	assert.Equal(t, target.SenderName(), generated.CustomerName())
	require.NotNil(t, target.InvoiceID())
	assert.True(t, target.InvoiceID().IsEqual(invoiceID))
	uow.AssertExpectations(t)
}

func TestGenerateInvoiceCommandHandler_Handle_Idempotent(t *testing.T) {
	ctx := t.Context()
	target := testShipment()
	existing := kernel.NewUUID()
	require.NoError(t, target.AttachInvoice(existing, time.Now().UTC()))

	cmd, err := commands.NewGenerateInvoiceCommand(target.ID(), adminActor())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGenerateInvoiceHandler(factory)
	invoiceID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, invoiceID.IsEqual(existing))
	uow.AssertExpectations(t)
}

func TestGenerateInvoiceCommandHandler_Handle_CustomerIsNotAuthorized(t *testing.T) {
	ctx := t.Context()
	target := testShipment()
	cmd, err := commands.NewGenerateInvoiceCommand(target.ID(), customerActor())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGenerateInvoiceHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}
