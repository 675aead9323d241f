package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

// DeleteBoxCommandHandler removes a box that has not shipped and holds no
// orders. Orders must be unassigned first so no dangling box references
// remain.
type DeleteBoxCommandHandler struct {
	uowFactory BoxUoWFactory
}

// NewDeleteBoxCommandHandler creates the handler.
func NewDeleteBoxCommandHandler(uowFactory BoxUoWFactory) DeleteBoxCommandHandler {
	return DeleteBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the deletability guards and removes the row.
func (h *DeleteBoxCommandHandler) Handle(ctx context.Context, cmd DeleteBoxCommand) error {
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

	aggregate, err := uow.BoxRepository().Get(ctx, cmd.BoxID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	members, err := uow.OrderRepository().GetAllByBox(ctx, cmd.BoxID())
	if err != nil {
		return err
	}
	if len(members) > 0 {
		return errs.NewPreconditionFailedErrorWithCause("box", cmd.BoxID(), "delete",
			aggregate.Status().Int(), errors.New("box still holds orders"))
	}

	if err = uow.BoxRepository().Delete(ctx, cmd.BoxID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
