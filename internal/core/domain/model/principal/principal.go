// Package principal defines the acting user identity consumed by every
// lifecycle operation. Authentication itself happens outside the core; the
// identity provider hands over an id, a role and optional contact details.
package principal

import (
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// Role classifies what a principal is allowed to do.
type Role string

const (
	// RoleAdmin has unrestricted access to all operations.
	RoleAdmin Role = "admin"
	// RoleAgent executes deliveries on shipments assigned to them.
	RoleAgent Role = "agent"
	// RoleCustomer books shipments and reads their own.
	RoleCustomer Role = "customer"
)

// RoleFromString parses a role name as supplied by the identity provider.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleAgent, RoleCustomer:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a known role", s))
	}
}

// Validate checks the role is one of the three known values.
func (r Role) Validate() error {
	_, err := RoleFromString(string(r))
	return err
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// Principal is the authenticated actor invoking an operation. Name and
// Phone are carried only for customer-shipment matching and audit
// descriptions; the core never verifies credentials.
type Principal struct {
	id    kernel.UUID
	role  Role
	name  string
	phone string
}

// New creates a Principal from the identity provider's claims.
// Name and phone may be empty.
func New(id kernel.UUID, role Role, name, phone string) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{id: id, role: role, name: name, phone: phone}, nil
}

// ID returns the principal's user id.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the principal's role.
func (p Principal) Role() Role {
	return p.role
}

// Name returns the display name, possibly empty.
func (p Principal) Name() string {
	return p.name
}

// Phone returns the contact phone, possibly empty.
func (p Principal) Phone() string {
	return p.phone
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.role == RoleAdmin
}

// Validate checks the principal carries a valid id and role.
func (p Principal) Validate() error {
	if err := p.id.Validate(); err != nil {
		return err
	}
	return p.role.Validate()
}
