package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteContainerCommandIsNotConstructed = errors.New(
	"DeleteContainerCommand must be created via NewDeleteContainerCommand constructor",
)

// DeleteContainerCommand removes a container administratively. Shipped
// containers are immutable and cannot be deleted.
type DeleteContainerCommand struct { //nolint:recvcheck //using for validation
	containerID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteContainerCommand creates the command.
func NewDeleteContainerCommand(containerID kernel.ID) (DeleteContainerCommand, error) {
	cmd := DeleteContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setContainerID(containerID); err != nil {
		return DeleteContainerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteContainerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteContainerCommandIsNotConstructed)
}

// ContainerID returns the container to delete.
func (c DeleteContainerCommand) ContainerID() kernel.ID {
	return c.containerID
}

func (c *DeleteContainerCommand) setContainerID(containerID kernel.ID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}

	c.containerID = containerID
	return nil
}
