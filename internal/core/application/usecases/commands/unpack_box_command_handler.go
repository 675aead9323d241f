package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

// UnpackBoxCommandHandler reverses a consolidation: the box returns to open
// with no container reference, every member order returns to ready-to-pack
// with its box reference cleared, and a container left without boxes
// returns to open. Rejected once the box or its container has shipped.
type UnpackBoxCommandHandler struct {
	uowFactory UoWFactory
}

// NewUnpackBoxCommandHandler creates the handler.
func NewUnpackBoxCommandHandler(uowFactory UoWFactory) UnpackBoxCommandHandler {
	return UnpackBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the guards and reverses the consolidation in one
// transaction.
func (h *UnpackBoxCommandHandler) Handle(ctx context.Context, cmd UnpackBoxCommand) error {
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

	containerID := boxAggregate.Container()
	if containerID == nil {
		return errs.NewPreconditionFailedErrorWithCause("box", cmd.BoxID(), "unpack",
			boxAggregate.Status().Int(), errors.New("box is not in a container"))
	}

	parent, err := uow.ContainerRepository().Get(ctx, *containerID)
	if err != nil {
		return err
	}
	if err = parent.EnsureAcceptsBoxes(); err != nil {
		return err
	}

	if err = boxAggregate.Unpack(); err != nil {
		return err
	}

	// Every previously cascaded order returns to ready-to-pack with its box
	// reference cleared.
	members, err := uow.OrderRepository().GetAllByBox(ctx, cmd.BoxID())
	if err != nil {
		return err
	}
	for _, member := range members {
		if err = member.UnassignFromBox(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, member); err != nil {
			return err
		}
	}

	siblings, err := uow.BoxRepository().GetAllByContainer(ctx, parent.ID())
	if err != nil {
		return err
	}
	remaining := 0
	for _, sibling := range siblings {
		if sibling.ID() != boxAggregate.ID() {
			remaining++
		}
	}
	if err = parent.ReleaseBox(remaining > 0); err != nil {
		return err
	}

	if err = uow.BoxRepository().Update(ctx, boxAggregate); err != nil {
		return err
	}

	if err = uow.ContainerRepository().Update(ctx, parent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
