package commands

import (
	"context"
	"fmt"
	"time"

	"courier/internal/core/domain/model/auditlog"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"
)

// AssignAgentCommandHandler handles agent assignment. The target user is
// resolved through the user directory so a shipment can never point at a
// missing user or a non-agent.
type AssignAgentCommandHandler struct {
	uowFactory AssignUoWFactory
	policy     services.AccessPolicy
}

// NewAssignAgentCommandHandler creates a handler for agent assignment.
func NewAssignAgentCommandHandler(
	uowFactory AssignUoWFactory,
	policy services.AccessPolicy,
) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the assignment command.
func (h *AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	target, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	actor := cmd.Actor()
	if !h.policy.CanPerform(actor, services.OpAssignAgent, target) {
		return errs.NewNotAuthorizedError(actor.Role().String(), string(services.OpAssignAgent))
	}

	agent, err := uow.UserDirectory().GetAgent(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = target.Assign(agent.ID, now); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, target); err != nil {
		return err
	}

	shipmentID := target.ID()
	actorID := actor.ID()
	entry, err := auditlog.NewEntry(
		kernel.NewUUID(),
		&shipmentID,
		target.TrackingID(),
		auditlog.ActionAssigned,
		fmt.Sprintf("Assigned to agent %s", agent.Name),
		&actorID,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
