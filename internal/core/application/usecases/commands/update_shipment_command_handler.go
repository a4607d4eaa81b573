package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/auditlog"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"
)

// UpdateShipmentCommandHandler handles partial edits of a shipment.
// When the patch touches weight, distance or delivery type the price is
// recomputed in the same operation, keeping the stored price consistent
// with its inputs.
type UpdateShipmentCommandHandler struct {
	uowFactory BookingUoWFactory
	policy     services.AccessPolicy
	pricing    services.PricingCalculator
}

// NewUpdateShipmentCommandHandler creates a handler for shipment edits.
func NewUpdateShipmentCommandHandler(
	uowFactory BookingUoWFactory,
	policy services.AccessPolicy,
	pricing services.PricingCalculator,
) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		pricing:    pricing,
	}
}

// Handle processes the edit command. Loads the shipment, authorizes the
// actor against the loaded aggregate, applies the patch and writes the
// audit entry in the same transaction.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
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
	if !h.policy.CanPerform(actor, services.OpUpdateShipment, target) {
		return errs.NewNotAuthorizedError(actor.Role().String(), string(services.OpUpdateShipment))
	}

	patch := cmd.Patch()
	if patch.BranchID != nil {
		if _, err = uow.BranchRepository().Get(ctx, *patch.BranchID); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	if err = target.ApplyPatch(patch, now); err != nil {
		return err
	}

	if patch.TouchesBilling() {
		price := h.pricing.ComputePrice(target.Weight(), target.Distance(), target.DeliveryType())
		target.SetPrice(price, now)
	}

	if err = shipmentRepo.Update(ctx, target); err != nil {
		return err
	}

	shipmentID := target.ID()
	actorID := actor.ID()
	entry, err := auditlog.NewEntry(
		kernel.NewUUID(),
		&shipmentID,
		target.TrackingID(),
		auditlog.ActionUpdated,
		"Shipment details updated",
		&actorID,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
