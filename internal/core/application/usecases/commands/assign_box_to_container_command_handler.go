package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

// AssignBoxToContainerCommandHandler consolidates a non-empty box into a
// container that has not shipped. Member orders move to the
// in-loading-container state; receiving its first box promotes the
// container from open to loading.
type AssignBoxToContainerCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignBoxToContainerCommandHandler creates the handler.
func NewAssignBoxToContainerCommandHandler(uowFactory UoWFactory) AssignBoxToContainerCommandHandler {
	return AssignBoxToContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the guards and records the consolidation in one
// transaction.
func (h *AssignBoxToContainerCommandHandler) Handle(ctx context.Context, cmd AssignBoxToContainerCommand) error {
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

	boxAggregate, err := uow.BoxRepository().Get(ctx, cmd.BoxID())
	if err != nil {
		return err
	}

	parent, err := uow.ContainerRepository().Get(ctx, cmd.ContainerID())
	if err != nil {
		return err
	}

	members, err := uow.OrderRepository().GetAllByBox(ctx, cmd.BoxID())
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return errs.NewPreconditionFailedErrorWithCause("box", cmd.BoxID(), "assignToContainer",
			boxAggregate.Status().Int(), errors.New("box is empty"))
	}

	if err = parent.ReceiveBox(); err != nil {
		return err
	}

	if err = boxAggregate.AssignToContainer(parent.ID()); err != nil {
		return err
	}

	for _, member := range members {
		if err = member.MarkInLoadingContainer(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, member); err != nil {
			return err
		}
	}

	if err = uow.BoxRepository().Update(ctx, boxAggregate); err != nil {
		return err
	}

	if err = uow.ContainerRepository().Update(ctx, parent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
