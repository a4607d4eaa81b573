package queries

import (
	"errors"

	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrGetCustomerStatsQueryIsNotConstructed = errors.New(
	"GetCustomerStatsQuery must be created via NewGetCustomerStatsQuery constructor",
)

// GetCustomerStatsQuery retrieves a customer's shipment counts. Customers
// always query themselves: their own claims override whatever name and
// phone were passed in. Admins may look up any customer by name or phone.
type GetCustomerStatsQuery struct {
	actor principal.Principal
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewGetCustomerStatsQuery creates the query. At least one of name or
// phone must end up non-empty.
func NewGetCustomerStatsQuery(actor principal.Principal, name, phone string) (GetCustomerStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetCustomerStatsQuery{}, err
	}

	if actor.Role() == principal.RoleCustomer {
		name = actor.Name()
		phone = actor.Phone()
	}
	if name == "" && phone == "" {
		return GetCustomerStatsQuery{}, errs.NewValueIsRequiredError("name or phone")
	}

	return GetCustomerStatsQuery{
		actor: actor,
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerStatsQueryIsNotConstructed)
}

// Actor returns the requesting principal.
func (q GetCustomerStatsQuery) Actor() principal.Principal {
	return q.actor
}

// Name returns the customer name to match, possibly empty.
func (q GetCustomerStatsQuery) Name() string {
	return q.name
}

// Phone returns the customer phone to match, possibly empty.
func (q GetCustomerStatsQuery) Phone() string {
	return q.phone
}

// GetCustomerStatsQueryResponse is the per-customer view: shipments where
// the customer is sender or receiver, with the lifecycle breakdown the
// customer dashboard shows.
type GetCustomerStatsQueryResponse struct {
	TotalShipments int64
	Pending        int64
	InTransit      int64
	Delivered      int64
}
