package queries

import (
	"context"

	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAgentStatsQueryHandler computes one agent's numbers with a single
// aggregate scan over their assignments.
type GetAgentStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentStatsQueryHandler creates the handler.
func NewGetAgentStatsQueryHandler(db *gorm.DB) GetAgentStatsQueryHandler {
	return GetAgentStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAgentStatsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentStatsQuery,
) (GetAgentStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAgentStatsQueryResponse{}, err
	}

	actor := query.Actor()
	selfLookup := actor.Role() == principal.RoleAgent && actor.ID().IsEqual(query.AgentID())
	if !actor.IsAdmin() && !selfLookup {
		return GetAgentStatsQueryResponse{}, errs.NewNotAuthorizedError(actor.Role().String(), "getAgentStats")
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'delivered'),
			COUNT(*) FILTER (WHERE status NOT IN ('delivered', 'cancelled')),
			COALESCE(SUM(price) FILTER (WHERE status = 'delivered'), 0)
		FROM shipments
		WHERE assigned_to = ?
	`, query.AgentID().Bytes()).Row()

	resp := GetAgentStatsQueryResponse{
		AgentID:       query.AgentID(),
		MonthlyTarget: AgentMonthlyTarget,
	}
	if err := row.Scan(&resp.TotalAssigned, &resp.Completed, &resp.Active, &resp.Earnings); err != nil {
		return GetAgentStatsQueryResponse{}, err
	}

	resp.TargetProgress = float64(resp.Completed) / float64(AgentMonthlyTarget)

	return resp, nil
}
