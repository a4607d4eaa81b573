package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"courier/internal/core/domain/model/auditlog"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// ChangeStatusCommandHandler handles shipment status transitions.
// Agents may only move shipments assigned to them; the transition itself
// is validated by the aggregate against the status state machine.
type ChangeStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     services.AccessPolicy
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewChangeStatusCommandHandler creates a handler for status transitions.
func NewChangeStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	policy services.AccessPolicy,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the transition. The audit entry records both endpoints
// of the move; a move to delivered through this path is marked as carrying
// no proof of delivery. The receiver is notified after commit.
func (h *ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) error {
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
	if !h.policy.CanPerform(actor, services.OpChangeStatus, target) {
		return errs.NewNotAuthorizedError(actor.Role().String(), string(services.OpChangeStatus))
	}

	previous := target.Status()
	now := time.Now().UTC()
	if err = target.ChangeStatus(cmd.Next(), now); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, target); err != nil {
		return err
	}

	description := fmt.Sprintf("Status changed from %s to %s", previous.Label(), cmd.Next().Label())
	if cmd.Next() == shipment.StatusDelivered {
		description += " without proof of delivery"
	}

	shipmentID := target.ID()
	actorID := actor.ID()
	entry, err := auditlog.NewEntry(
		kernel.NewUUID(),
		&shipmentID,
		target.TrackingID(),
		auditlog.ActionStatusChanged,
		description,
		&actorID,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.notifier, h.logger, ports.Notification{
		Recipient: target.ReceiverName(),
		Phone:     target.ReceiverPhone().String(),
		Subject:   "Shipment status update",
		Body:      fmt.Sprintf("Shipment %s is now %s.", target.TrackingID(), cmd.Next().Label()),
	})

	return nil
}
