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

// CompleteDeliveryCommandHandler handles the final step of a delivery:
// stores the proof artifacts in the blob store, writes the proof record
// and moves the shipment to delivered, all anchored on one transaction.
//
// Blob writes happen before the transaction commits; a rollback can leave
// orphaned blobs behind, which is harmless, while the reverse order could
// leave a proof record pointing at nothing.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	policy     services.AccessPolicy
	blobs      ports.BlobStore
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	policy services.AccessPolicy,
	blobs ports.BlobStore,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		blobs:      blobs,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the completion command.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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
	if !h.policy.CanPerform(actor, services.OpCompleteDelivery, target) {
		return errs.NewNotAuthorizedError(actor.Role().String(), string(services.OpCompleteDelivery))
	}

	podID := kernel.NewUUID()
	signatureRef, err := h.blobs.Put(ctx, fmt.Sprintf("pod/%s/signature", podID), cmd.Signature())
	if err != nil {
		return err
	}

	var photoRef string
	if len(cmd.Photo()) > 0 {
		photoRef, err = h.blobs.Put(ctx, fmt.Sprintf("pod/%s/photo", podID), cmd.Photo())
		if err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	proof, err := shipment.NewProofOfDelivery(
		podID,
		target.ID(),
		cmd.SigneeName(),
		signatureRef,
		photoRef,
		cmd.Location(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.PodRepository().Add(ctx, proof); err != nil {
		return err
	}

	if err = target.CompleteDelivery(podID, now); err != nil {
		return err
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
		auditlog.ActionStatusChanged,
		fmt.Sprintf("Delivered, signed by %s", cmd.SigneeName()),
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
		Subject:   "Shipment delivered",
		Body:      fmt.Sprintf("Shipment %s was delivered and signed by %s.", target.TrackingID(), cmd.SigneeName()),
	})

	return nil
}
