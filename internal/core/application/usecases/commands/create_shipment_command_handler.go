package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"courier/internal/core/domain/model/auditlog"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for booking a
// shipment: tracking id generation, price derivation, branch resolution,
// the audit entry and the booking notification.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, policy, pricing, ids, notifier, logger)
//	cmd, _ := NewCreateShipmentCommand(kernel.NewUUID(), actor, params)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
type CreateShipmentCommandHandler struct {
	uowFactory BookingUoWFactory
	policy     services.AccessPolicy
	pricing    services.PricingCalculator
	ids        services.IdentifierGenerator
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewCreateShipmentCommandHandler creates a handler for shipment booking.
func NewCreateShipmentCommandHandler(
	uowFactory BookingUoWFactory,
	policy services.AccessPolicy,
	pricing services.PricingCalculator,
	ids services.IdentifierGenerator,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		pricing:    pricing,
		ids:        ids,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the booking command. The shipment starts pending with a
// freshly generated tracking id; price is set only when both weight and
// distance were supplied. The audit entry commits atomically with the
// shipment, the notification is sent best-effort after the commit.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !h.policy.CanPerform(actor, services.OpCreateShipment, nil) {
		return errs.NewNotAuthorizedError(actor.Role().String(), string(services.OpCreateShipment))
	}

	params := cmd.Params()
	if actor.Role() == principal.RoleCustomer {
		// Customers always book for themselves; the booker anchor is what
		// later grants them read access regardless of phone or name drift.
		actorID := actor.ID()
		params.BookedBy = &actorID
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if params.BranchID != nil {
		if _, err := uow.BranchRepository().Get(ctx, *params.BranchID); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	trackingID := h.ids.NewTrackingID()

	newShipment, err := shipment.NewShipment(cmd.ShipmentID(), trackingID, now, params)
	if err != nil {
		return err
	}

	if price := h.pricing.ComputePrice(newShipment.Weight(), newShipment.Distance(), newShipment.DeliveryType()); price != nil {
		newShipment.SetPrice(price, now)
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return err
	}

	shipmentID := newShipment.ID()
	actorID := actor.ID()
	entry, err := auditlog.NewEntry(
		kernel.NewUUID(),
		&shipmentID,
		trackingID,
		auditlog.ActionCreated,
		fmt.Sprintf("Shipment %s booked for %s", trackingID, newShipment.ReceiverName()),
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
		Recipient: newShipment.ReceiverName(),
		Phone:     newShipment.ReceiverPhone().String(),
		Subject:   "Shipment booked",
		Body:      fmt.Sprintf("Shipment %s has been booked and is pending pickup.", trackingID),
	})

	return nil
}
