package queries

import (
	"context"

	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAgentsQueryHandler serves the agent roster from the users table.
type ListAgentsQueryHandler struct {
	db *gorm.DB
}

// NewListAgentsQueryHandler creates the handler.
func NewListAgentsQueryHandler(db *gorm.DB) ListAgentsQueryHandler {
	return ListAgentsQueryHandler{db: db}
}

// Handle executes the query, agents ordered by name.
func (h ListAgentsQueryHandler) Handle(
	ctx context.Context,
	query ListAgentsQuery,
) ([]AgentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdmin() {
		return nil, errs.NewNotAuthorizedError(query.Actor().Role().String(), "listAgents")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone
		FROM users
		WHERE role = 'agent'
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := make([]AgentResponse, 0)
	for rows.Next() {
		var (
			resp AgentResponse
			id   uuid.UUID
		)

		if err = rows.Scan(&id, &resp.Name, &resp.Phone); err != nil {
			return nil, err
		}

		if resp.ID, err = kernelUUID(id); err != nil {
			return nil, err
		}

		agents = append(agents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
