package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/guard"
)

var ErrGetAgentStatsQueryIsNotConstructed = errors.New(
	"GetAgentStatsQuery must be created via NewGetAgentStatsQuery constructor",
)

// AgentMonthlyTarget is the fixed delivery target every agent is measured
// against.
const AgentMonthlyTarget = 50

// GetAgentStatsQuery retrieves one agent's workload and earnings view.
// Admins may query any agent; an agent may query themself.
type GetAgentStatsQuery struct {
	actor   principal.Principal
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentStatsQuery creates the query.
func NewGetAgentStatsQuery(actor principal.Principal, agentID kernel.UUID) (GetAgentStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAgentStatsQuery{}, err
	}
	if err := agentID.Validate(); err != nil {
		return GetAgentStatsQuery{}, err
	}

	return GetAgentStatsQuery{
		actor:   actor,
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentStatsQueryIsNotConstructed)
}

// Actor returns the requesting principal.
func (q GetAgentStatsQuery) Actor() principal.Principal {
	return q.actor
}

// AgentID returns the agent being inspected.
func (q GetAgentStatsQuery) AgentID() kernel.UUID {
	return q.agentID
}

// GetAgentStatsQueryResponse is the per-agent statistics view. Earnings
// sum the price of delivered shipments assigned to the agent; progress is
// completed deliveries against AgentMonthlyTarget.
type GetAgentStatsQueryResponse struct {
	AgentID        kernel.UUID
	TotalAssigned  int64
	Completed      int64
	Active         int64
	Earnings       float64
	MonthlyTarget  int
	TargetProgress float64
}
