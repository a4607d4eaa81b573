package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListBranchesQueryHandler serves the branch reference list.
type ListBranchesQueryHandler struct {
	db *gorm.DB
}

// NewListBranchesQueryHandler creates the handler.
func NewListBranchesQueryHandler(db *gorm.DB) ListBranchesQueryHandler {
	return ListBranchesQueryHandler{db: db}
}

// Handle executes the query, branches ordered by name.
func (h ListBranchesQueryHandler) Handle(
	ctx context.Context,
	query ListBranchesQuery,
) ([]BranchResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			phone,
			manager_id,
			created_at
		FROM branches
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := make([]BranchResponse, 0)
	for rows.Next() {
		var (
			resp      BranchResponse
			id        uuid.UUID
			managerID uuid.NullUUID
		)

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Address,
			&resp.Phone,
			&managerID,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernelUUID(id); err != nil {
			return nil, err
		}
		if resp.ManagerID, err = optionalUUID(managerID); err != nil {
			return nil, err
		}

		branches = append(branches, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}
