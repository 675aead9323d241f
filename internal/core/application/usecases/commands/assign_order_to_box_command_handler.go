package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/container"
	"fulfillment/internal/core/domain/model/kernel"
)

// AssignOrderToBoxCommandHandler packs an order into a box. The box enforces
// freight-mode homogeneity against the orders it already holds; a box inside
// a loading container moves the order straight to the in-loading-container
// state, and a shipped box or container rejects the assignment.
type AssignOrderToBoxCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrderToBoxCommandHandler creates the handler.
func NewAssignOrderToBoxCommandHandler(uowFactory UoWFactory) AssignOrderToBoxCommandHandler {
	return AssignOrderToBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the compatibility constraints and records the assignment.
func (h *AssignOrderToBoxCommandHandler) Handle(ctx context.Context, cmd AssignOrderToBoxCommand) error {
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

	boxAggregate, err := uow.BoxRepository().Get(ctx, cmd.BoxID())
	if err != nil {
		return err
	}

	if err = boxAggregate.EnsureAcceptsOrders(); err != nil {
		return err
	}

	members, err := uow.OrderRepository().GetAllByBox(ctx, cmd.BoxID())
	if err != nil {
		return err
	}

	modes := make([]kernel.FreightMode, 0, len(members))
	for _, member := range members {
		modes = append(modes, member.FreightMode())
	}
	if err = boxAggregate.AcceptsMode(modes, aggregate.FreightMode()); err != nil {
		return err
	}

	containerLoading := false
	if containerID := boxAggregate.Container(); containerID != nil {
		var parent *container.Container
		parent, err = uow.ContainerRepository().Get(ctx, *containerID)
		if err != nil {
			return err
		}
		if err = parent.EnsureAcceptsBoxes(); err != nil {
			return err
		}
		containerLoading = parent.Status() == container.Loading
	}

	if err = aggregate.AssignToBox(boxAggregate.ID(), containerLoading); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
