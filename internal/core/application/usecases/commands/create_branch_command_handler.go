package commands

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/branch"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"
)

// CreateBranchCommandHandler handles branch registration, an admin-only
// operation. Branch names are unique; the handler checks before inserting
// and the store's unique index backs it up under concurrency.
type CreateBranchCommandHandler struct {
	uowFactory BranchUoWFactory
	policy     services.AccessPolicy
}

// NewCreateBranchCommandHandler creates a handler for branch registration.
func NewCreateBranchCommandHandler(
	uowFactory BranchUoWFactory,
	policy services.AccessPolicy,
) CreateBranchCommandHandler {
	return CreateBranchCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the registration command. Returns a ConflictError when
// a branch with the same name already exists.
func (h *CreateBranchCommandHandler) Handle(ctx context.Context, cmd CreateBranchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !h.policy.CanPerform(actor, services.OpManageBranches, nil) {
		return errs.NewNotAuthorizedError(actor.Role().String(), string(services.OpManageBranches))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	branchRepo := uow.BranchRepository()
	_, err := branchRepo.GetByName(ctx, cmd.Name())
	if err == nil {
		return errs.NewConflictError("name", cmd.Name())
	}
	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return err
	}

	office, err := branch.NewBranch(
		cmd.BranchID(),
		cmd.Name(),
		cmd.Address(),
		cmd.Phone(),
		cmd.ManagerID(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = branchRepo.Add(ctx, office); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
