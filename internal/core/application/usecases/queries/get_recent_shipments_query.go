package queries

import (
	"errors"

	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/guard"
)

var ErrGetRecentShipmentsQueryIsNotConstructed = errors.New(
	"GetRecentShipmentsQuery must be created via NewGetRecentShipmentsQuery constructor",
)

// MaxRecentShipments caps the recent-activity feed size.
const MaxRecentShipments = 50

// GetRecentShipmentsQuery retrieves the most recently updated shipments
// for the admin dashboard's activity feed.
type GetRecentShipmentsQuery struct {
	actor principal.Principal
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentShipmentsQuery creates the query. The limit is clamped to
// [1, MaxRecentShipments], defaulting to 10 when non-positive.
func NewGetRecentShipmentsQuery(actor principal.Principal, limit int) (GetRecentShipmentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetRecentShipmentsQuery{}, err
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > MaxRecentShipments {
		limit = MaxRecentShipments
	}

	return GetRecentShipmentsQuery{
		actor: actor,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecentShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentShipmentsQueryIsNotConstructed)
}

// Actor returns the requesting principal.
func (q GetRecentShipmentsQuery) Actor() principal.Principal {
	return q.actor
}

// Limit returns the clamped feed size.
func (q GetRecentShipmentsQuery) Limit() int {
	return q.limit
}
