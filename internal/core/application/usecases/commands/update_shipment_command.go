package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var (
	ErrUpdateShipmentCommandIsNotConstructed = errors.New(
		"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
	)
	ErrPatchIsEmpty = errors.New("patch must change at least one field")
)

// UpdateShipmentCommand represents a request to edit a shipment's details.
// Only the fields present in the patch change; status, assignment, proof
// and invoice links have their own commands.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      principal.Principal
	patch      shipment.Patch

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to patch a shipment.
// Rejects an empty patch up front.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	actor principal.Principal,
	patch shipment.Patch,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the target shipment id.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the principal performing the edit.
func (c UpdateShipmentCommand) Actor() principal.Principal {
	return c.actor
}

// Patch returns the fields to change.
func (c UpdateShipmentCommand) Patch() shipment.Patch {
	return c.patch
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateShipmentCommand) setPatch(patch shipment.Patch) error {
	if patch.IsEmpty() {
		return ErrPatchIsEmpty
	}

	c.patch = patch
	return nil
}
