package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/pkg/guard"
)

var ErrListAgentsQueryIsNotConstructed = errors.New(
	"ListAgentsQuery must be created via NewListAgentsQuery constructor",
)

// ListAgentsQuery retrieves the agent roster for the assignment picker.
// Admin only.
type ListAgentsQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

// NewListAgentsQuery creates the query.
func NewListAgentsQuery(actor principal.Principal) (ListAgentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListAgentsQuery{}, err
	}

	return ListAgentsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAgentsQuery) Validate() error {
	return q.guard.Validate(ErrListAgentsQueryIsNotConstructed)
}

// Actor returns the requesting principal.
func (q ListAgentsQuery) Actor() principal.Principal {
	return q.actor
}

// AgentResponse is one roster row.
type AgentResponse struct {
	ID    kernel.UUID
	Name  string
	Phone string
}
