package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrListBranchesQueryIsNotConstructed = errors.New(
	"ListBranchesQuery must be created via NewListBranchesQuery constructor",
)

// ListBranchesQuery retrieves all branch offices. Open to every
// authenticated principal; the branch list is reference data shown in the
// booking form.
type ListBranchesQuery struct {
	guard guard.ConstructorGuard
}

// NewListBranchesQuery creates the query.
func NewListBranchesQuery() ListBranchesQuery {
	return ListBranchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListBranchesQuery) Validate() error {
	return q.guard.Validate(ErrListBranchesQueryIsNotConstructed)
}

// BranchResponse is one branch row.
type BranchResponse struct {
	ID        kernel.UUID
	Name      string
	Address   string
	Phone     string
	ManagerID *kernel.UUID
	CreatedAt time.Time
}
