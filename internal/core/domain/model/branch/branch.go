// Package branch contains the Branch entity: a physical hub a shipment may
// be routed through. Branch names are unique across the system.
package branch

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// ErrBranchIsNotConstructed is returned when a Branch was not created
// through NewBranch or RestoreBranch.
var ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch or RestoreBranch")

// Branch is a courier hub with an optional manager reference.
type Branch struct {
	id        kernel.UUID
	name      string
	address   string
	phone     string
	managerID *kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewBranch creates a branch. Name and address are required; phone and
// manager are optional. Name uniqueness is enforced by the store.
func NewBranch(
	id kernel.UUID,
	name string,
	address string,
	phone string,
	managerID *kernel.UUID,
	createdAt time.Time,
) (*Branch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}
	if managerID != nil {
		if err := managerID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Branch{
		id:            id,
		name:          name,
		address:       address,
		phone:         phone,
		managerID:     managerID,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreBranch reconstructs a branch from persistence.
func RestoreBranch(
	id kernel.UUID,
	name string,
	address string,
	phone string,
	managerID *kernel.UUID,
	createdAt time.Time,
) (*Branch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Branch{
		id:            id,
		name:          name,
		address:       address,
		phone:         phone,
		managerID:     managerID,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the branch was built through a constructor.
func (b *Branch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBranchIsNotConstructed
	}
	return nil
}

func (b *Branch) ID() kernel.UUID         { return b.id }
func (b *Branch) Name() string            { return b.name }
func (b *Branch) Address() string         { return b.address }
func (b *Branch) Phone() string           { return b.phone }
func (b *Branch) ManagerID() *kernel.UUID { return b.managerID }
func (b *Branch) CreatedAt() time.Time    { return b.createdAt }
