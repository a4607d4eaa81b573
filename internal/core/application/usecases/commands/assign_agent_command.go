package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand represents a request to hand a shipment to a delivery
// agent. Reassignment of an already assigned shipment is allowed as long
// as the shipment is not in a terminal state.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      principal.Principal
	agentID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign an agent to a shipment.
func NewAssignAgentCommand(
	shipmentID kernel.UUID,
	actor principal.Principal,
	agentID kernel.UUID,
) (AssignAgentCommand, error) {
	cmd := AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
		cmd.setAgentID(agentID),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// ShipmentID returns the target shipment id.
func (c AssignAgentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Actor returns the principal performing the assignment.
func (c AssignAgentCommand) Actor() principal.Principal {
	return c.actor
}

// AgentID returns the agent receiving the shipment.
func (c AssignAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *AssignAgentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AssignAgentCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AssignAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
