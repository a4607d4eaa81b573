package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to book a new shipment.
// The tracking id is not part of the command; it is generated by the
// handler at booking time.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, actor, params)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to book shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      principal.Principal
	params     shipment.NewShipmentParams

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to book a new shipment.
// Required fields of params are validated here with the same rules the
// aggregate applies, so malformed requests fail before a transaction opens.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	actor principal.Principal,
	params shipment.NewShipmentParams,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
		cmd.setParams(params),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the principal booking the shipment.
func (c CreateShipmentCommand) Actor() principal.Principal {
	return c.actor
}

// Params returns the caller-supplied shipment fields.
func (c CreateShipmentCommand) Params() shipment.NewShipmentParams {
	return c.params
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateShipmentCommand) setParams(params shipment.NewShipmentParams) error {
	if params.SenderName == "" {
		return errs.NewValueIsRequiredError("senderName")
	}
	if params.ReceiverName == "" {
		return errs.NewValueIsRequiredError("receiverName")
	}
	if err := params.ReceiverPhone.Validate(); err != nil {
		return err
	}
	if params.PickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if params.DeliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.params = params
	return nil
}
