package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
)

// AgentRecord is a read-only directory entry for a delivery agent.
type AgentRecord struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// UserDirectory resolves agent references. The courier core does not own
// user accounts, it only needs to confirm that an assignment target exists
// and is an agent.
type UserDirectory interface {
	// GetAgent retrieves an agent by id. Returns an ObjectNotFoundError
	// when the user does not exist or is not an agent.
	GetAgent(ctx context.Context, id kernel.UUID) (AgentRecord, error)
}
