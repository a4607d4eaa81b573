package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/guard"
)

var ErrGenerateInvoiceCommandIsNotConstructed = errors.New(
	"GenerateInvoiceCommand must be created via NewGenerateInvoiceCommand constructor",
)

// GenerateInvoiceCommand represents a request to produce an invoice for a
// shipment. The operation is idempotent: repeating it returns the invoice
// generated the first time.
type GenerateInvoiceCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      principal.Principal

	guard guard.ConstructorGuard
}

// NewGenerateInvoiceCommand creates a command to generate an invoice.
func NewGenerateInvoiceCommand(
	shipmentID kernel.UUID,
	actor principal.Principal,
) (GenerateInvoiceCommand, error) {
	cmd := GenerateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
	); err != nil {
		return GenerateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoiceCommandIsNotConstructed)
}

// ShipmentID returns the target shipment id.
func (c GenerateInvoiceCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the principal requesting the invoice.
func (c GenerateInvoiceCommand) Actor() principal.Principal {
	return c.actor
}

func (c *GenerateInvoiceCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *GenerateInvoiceCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
