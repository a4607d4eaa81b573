package ports

import (
	"context"

	"courier/internal/core/domain/model/branch"
	"courier/internal/core/domain/model/kernel"
)

// BranchRepository is the persistence contract for branch offices.
type BranchRepository interface {
	Add(ctx context.Context, office *branch.Branch) error

	// Get retrieves a branch by id. Returns an ObjectNotFoundError when
	// the branch does not exist.
	Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error)

	// GetByName retrieves a branch by its exact name. Returns an
	// ObjectNotFoundError when no branch carries that name.
	GetByName(ctx context.Context, name string) (*branch.Branch, error)
}
