package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var ErrChangeStatusCommandIsNotConstructed = errors.New(
	"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
)

// ChangeStatusCommand represents a request to move a shipment along its
// status state machine. Moving to delivered through this command does not
// attach proof of delivery; CompleteDeliveryCommand does.
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      principal.Principal
	next       shipment.Status

	guard guard.ConstructorGuard
}

// NewChangeStatusCommand creates a command to change a shipment's status.
func NewChangeStatusCommand(
	shipmentID kernel.UUID,
	actor principal.Principal,
	next shipment.Status,
) (ChangeStatusCommand, error) {
	cmd := ChangeStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
		cmd.setNext(next),
	); err != nil {
		return ChangeStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

// ShipmentID returns the target shipment id.
func (c ChangeStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the principal requesting the transition.
func (c ChangeStatusCommand) Actor() principal.Principal {
	return c.actor
}

// Next returns the requested target status.
func (c ChangeStatusCommand) Next() shipment.Status {
	return c.next
}

func (c *ChangeStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ChangeStatusCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ChangeStatusCommand) setNext(next shipment.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}
