package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// UnassignOrderFromBoxCommandHandler releases an order from its box, moving
// it back to ready-to-pack. Rejected once the box, or the container holding
// the box, has shipped.
type UnassignOrderFromBoxCommandHandler struct {
	uowFactory UoWFactory
}

// NewUnassignOrderFromBoxCommandHandler creates the handler.
func NewUnassignOrderFromBoxCommandHandler(uowFactory UoWFactory) UnassignOrderFromBoxCommandHandler {
	return UnassignOrderFromBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the guards and clears the box reference.
func (h *UnassignOrderFromBoxCommandHandler) Handle(ctx context.Context, cmd UnassignOrderFromBoxCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	boxID := aggregate.Box()
	if boxID == nil {
		return errs.NewPreconditionFailedError("order", aggregate.ID(), "unassignFromBox",
			aggregate.Status().Int())
	}

	boxAggregate, err := uow.BoxRepository().Get(ctx, *boxID)
	if err != nil {
		return err
	}

	if err = boxAggregate.EnsureAcceptsOrders(); err != nil {
		return err
	}

	if containerID := boxAggregate.Container(); containerID != nil {
		parent, containerErr := uow.ContainerRepository().Get(ctx, *containerID)
		if containerErr != nil {
			return containerErr
		}
		if err = parent.EnsureAcceptsBoxes(); err != nil {
			return err
		}
	}

	if err = aggregate.UnassignFromBox(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
