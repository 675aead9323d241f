package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/box"
)

// CreateBoxCommandHandler handles box creation.
type CreateBoxCommandHandler struct {
	uowFactory BoxUoWFactory
}

// NewCreateBoxCommandHandler creates a handler for box creation.
func NewCreateBoxCommandHandler(uowFactory BoxUoWFactory) CreateBoxCommandHandler {
	return CreateBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates an empty open box inside a transaction.
func (h *CreateBoxCommandHandler) Handle(ctx context.Context, cmd CreateBoxCommand) error {
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

	aggregate, err := box.NewBox(cmd.BoxID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.BoxRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
