package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/container"
)

// CreateContainerCommandHandler handles container creation.
type CreateContainerCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateContainerCommandHandler creates a handler for container creation.
func NewCreateContainerCommandHandler(uowFactory UoWFactory) CreateContainerCommandHandler {
	return CreateContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates an empty open container inside a transaction.
func (h *CreateContainerCommandHandler) Handle(ctx context.Context, cmd CreateContainerCommand) error {
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

	aggregate, err := container.NewContainer(cmd.ContainerID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.ContainerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
