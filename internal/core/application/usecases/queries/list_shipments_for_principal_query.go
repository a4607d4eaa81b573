package queries

import (
	"errors"

	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/guard"
)

var ErrListShipmentsForPrincipalQueryIsNotConstructed = errors.New(
	"ListShipmentsForPrincipalQuery must be created via NewListShipmentsForPrincipalQuery constructor",
)

// ListShipmentsForPrincipalQuery is the "my shipments" view: everything
// the actor owns or participates in, regardless of status. For customers
// the match runs over the booker anchor plus the phone and name of either
// party, which is deliberately loose; the booker anchor is the reliable
// half of it.
type ListShipmentsForPrincipalQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

// NewListShipmentsForPrincipalQuery creates the query.
func NewListShipmentsForPrincipalQuery(actor principal.Principal) (ListShipmentsForPrincipalQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListShipmentsForPrincipalQuery{}, err
	}

	return ListShipmentsForPrincipalQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsForPrincipalQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsForPrincipalQueryIsNotConstructed)
}

// Actor returns the requesting principal.
func (q ListShipmentsForPrincipalQuery) Actor() principal.Principal {
	return q.actor
}
