package queries

import (
	"errors"

	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery retrieves the global dashboard numbers: shipment counts
// per status and total revenue. Admin only.
type GetStatsQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates the query.
func NewGetStatsQuery(actor principal.Principal) (GetStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetStatsQuery{}, err
	}

	return GetStatsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// Actor returns the requesting principal.
func (q GetStatsQuery) Actor() principal.Principal {
	return q.actor
}

// GetStatsQueryResponse is the global statistics view. Revenue counts a
// missing price as zero.
type GetStatsQueryResponse struct {
	TotalShipments int64
	CountsByStatus map[string]int64
	TotalRevenue   float64
}
