package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChangeStatusHandler(factory commands.ShipmentUoWFactory, notifier *MockNotificationSink) commands.ChangeStatusCommandHandler {
	return commands.NewChangeStatusCommandHandler(
		factory,
		services.NewAccessPolicy(),
		notifier,
		discardLogger(),
	)
}

func TestNewChangeStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewChangeStatusCommand(kernel.NewUUID(), adminActor(), shipment.Status("lost"))
	require.Error(t, err)
}

func TestChangeStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := testShipment()
	cmd, err := commands.NewChangeStatusCommand(target.ID(), adminActor(), shipment.StatusPickedUp)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	auditRepo := new(MockAuditLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		shipmentRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*auditlog.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotificationSink)
	notifier.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newChangeStatusHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, shipment.StatusPickedUp, target.Status())
	uow.AssertExpectations(t)
}

func TestChangeStatusCommandHandler_Handle_AgentOnOwnShipment(t *testing.T) {
	ctx := t.Context()
	target := testShipment()
	agentID := kernel.NewUUID()
	actor := agentActor(agentID)

	cmd, err := commands.NewChangeStatusCommand(target.ID(), actor, shipment.StatusPickedUp)
	require.NoError(t, err)

	// Not assigned yet: the agent has no access to the shipment.
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newChangeStatusHandler(factory, new(MockNotificationSink))
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrNotAuthorized)
}

func TestChangeStatusCommandHandler_Handle_InvalidTransitionRollsBack(t *testing.T) {
	ctx := t.Context()
	target := testShipment()
	cmd, err := commands.NewChangeStatusCommand(target.ID(), adminActor(), shipment.StatusPending)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newChangeStatusHandler(factory, new(MockNotificationSink))
	require.Error(t, h.Handle(ctx, cmd))
	assert.Equal(t, shipment.StatusPending, target.Status())
	uow.AssertExpectations(t)
}
