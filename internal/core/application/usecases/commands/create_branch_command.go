package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrCreateBranchCommandIsNotConstructed = errors.New(
	"CreateBranchCommand must be created via NewCreateBranchCommand constructor",
)

// CreateBranchCommand represents a request to register a branch office.
type CreateBranchCommand struct { //nolint:recvcheck //using for validation
	branchID  kernel.UUID
	actor     principal.Principal
	name      string
	address   string
	phone     string
	managerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateBranchCommand creates a command to register a branch.
// Phone and manager are optional.
func NewCreateBranchCommand(
	branchID kernel.UUID,
	actor principal.Principal,
	name string,
	address string,
	phone string,
	managerID *kernel.UUID,
) (CreateBranchCommand, error) {
	cmd := CreateBranchCommand{
		phone:     phone,
		managerID: managerID,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBranchID(branchID),
		cmd.setActor(actor),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return CreateBranchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBranchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBranchCommandIsNotConstructed)
}

// BranchID returns the unique identifier for the new branch.
func (c CreateBranchCommand) BranchID() kernel.UUID {
	return c.branchID
}

// Actor returns the principal registering the branch.
func (c CreateBranchCommand) Actor() principal.Principal {
	return c.actor
}

// Name returns the branch name.
func (c CreateBranchCommand) Name() string {
	return c.name
}

// Address returns the branch address.
func (c CreateBranchCommand) Address() string {
	return c.address
}

// Phone returns the branch phone, possibly empty.
func (c CreateBranchCommand) Phone() string {
	return c.phone
}

// ManagerID returns the optional manager reference, possibly nil.
func (c CreateBranchCommand) ManagerID() *kernel.UUID {
	return c.managerID
}

func (c *CreateBranchCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	c.branchID = branchID
	return nil
}

func (c *CreateBranchCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateBranchCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateBranchCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}
