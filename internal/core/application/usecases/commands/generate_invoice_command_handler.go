package commands

import (
	"context"
	"fmt"
	"time"

	"courier/internal/core/domain/model/auditlog"
	"courier/internal/core/domain/model/invoice"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"
)

// GenerateInvoiceCommandHandler handles invoice generation. The invoice is
// a snapshot: amount, customer name and address are copied from the
// shipment at generation time and never follow later edits.
type GenerateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
	policy     services.AccessPolicy
	ids        services.IdentifierGenerator
}

// NewGenerateInvoiceCommandHandler creates a handler for invoice generation.
func NewGenerateInvoiceCommandHandler(
	uowFactory InvoiceUoWFactory,
	policy services.AccessPolicy,
	ids services.IdentifierGenerator,
) GenerateInvoiceCommandHandler {
	return GenerateInvoiceCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		ids:        ids,
	}
}

// Handle processes the generation command and returns the invoice id.
// When the shipment already carries an invoice that id is returned
// unchanged and nothing is written.
func (h *GenerateInvoiceCommandHandler) Handle(ctx context.Context, cmd GenerateInvoiceCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	target, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return kernel.UUID{}, err
	}

	actor := cmd.Actor()
	if !h.policy.CanPerform(actor, services.OpGenerateInvoice, target) {
		return kernel.UUID{}, errs.NewNotAuthorizedError(actor.Role().String(), string(services.OpGenerateInvoice))
	}

	if existing := target.InvoiceID(); existing != nil {
		return *existing, nil
	}

	var amount float64
	if price := target.Price(); price != nil {
		amount = *price
	}

	now := time.Now().UTC()
	invoiceID := kernel.NewUUID()
	invoiceNumber := h.ids.NewInvoiceNumber()

	inv, err := invoice.NewInvoice(
		invoiceID,
		target.ID(),
		invoiceNumber,
		amount,
		target.SenderName(),
		target.PickupAddress(),
		now,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return kernel.UUID{}, err
	}

	if err = target.AttachInvoice(invoiceID, now); err != nil {
		return kernel.UUID{}, err
	}

	if err = shipmentRepo.Update(ctx, target); err != nil {
		return kernel.UUID{}, err
	}

	shipmentID := target.ID()
	actorID := actor.ID()
	entry, err := auditlog.NewEntry(
		kernel.NewUUID(),
		&shipmentID,
		target.TrackingID(),
		auditlog.ActionUpdated,
		fmt.Sprintf("Invoice %s generated", invoiceNumber),
		&actorID,
		now,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.AuditLogRepository().Append(ctx, entry); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return invoiceID, nil
}
