package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

// DeleteContainerCommandHandler removes a container that has not shipped
// and holds no boxes.
type DeleteContainerCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteContainerCommandHandler creates the handler.
func NewDeleteContainerCommandHandler(uowFactory UoWFactory) DeleteContainerCommandHandler {
	return DeleteContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the deletability guards and removes the row.
func (h *DeleteContainerCommandHandler) Handle(ctx context.Context, cmd DeleteContainerCommand) error {
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

	aggregate, err := uow.ContainerRepository().Get(ctx, cmd.ContainerID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	boxes, err := uow.BoxRepository().GetAllByContainer(ctx, cmd.ContainerID())
	if err != nil {
		return err
	}
	if len(boxes) > 0 {
		return errs.NewPreconditionFailedErrorWithCause("container", cmd.ContainerID(), "delete",
			aggregate.Status().Int(), errors.New("container still holds boxes"))
	}

	if err = uow.ContainerRepository().Delete(ctx, cmd.ContainerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
