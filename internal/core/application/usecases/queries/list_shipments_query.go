package queries

import (
	"errors"

	"courier/internal/core/domain/model/principal"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// DefaultListLimit bounds list responses when the caller does not ask for
// a specific page size.
const DefaultListLimit = 100

// ListShipmentsQuery retrieves shipments visible to the actor, newest
// first, optionally filtered by status. Admins see everything, agents
// their assignments, customers their own shipments.
type ListShipmentsQuery struct {
	actor  principal.Principal
	status *shipment.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a list query. A nil status means no
// filter; limit <= 0 falls back to DefaultListLimit.
func NewListShipmentsQuery(
	actor principal.Principal,
	status *shipment.Status,
	limit int,
	offset int,
) (ListShipmentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListShipmentsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return ListShipmentsQuery{
		actor:  actor,
		status: status,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Actor returns the requesting principal.
func (q ListShipmentsQuery) Actor() principal.Principal {
	return q.actor
}

// Status returns the optional status filter, possibly nil.
func (q ListShipmentsQuery) Status() *shipment.Status {
	return q.status
}

// Limit returns the page size.
func (q ListShipmentsQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q ListShipmentsQuery) Offset() int {
	return q.offset
}
