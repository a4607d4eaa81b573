package commands

import (
	"context"
	"fmt"
	"time"

	"courier/internal/core/domain/model/auditlog"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"
)

// DeleteShipmentCommandHandler handles shipment removal, an admin-only
// operation. The deletion entry keeps the tracking id readable after the
// shipment id becomes a dangling reference.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	policy services.AccessPolicy,
) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the deletion command.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	target, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	actor := cmd.Actor()
	if !h.policy.CanPerform(actor, services.OpDeleteShipment, target) {
		return errs.NewNotAuthorizedError(actor.Role().String(), string(services.OpDeleteShipment))
	}

	now := time.Now().UTC()
	shipmentID := target.ID()
	actorID := actor.ID()
	entry, err := auditlog.NewEntry(
		kernel.NewUUID(),
		&shipmentID,
		target.TrackingID(),
		auditlog.ActionDeleted,
		fmt.Sprintf("Shipment %s deleted", target.TrackingID()),
		&actorID,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	if err = shipmentRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
