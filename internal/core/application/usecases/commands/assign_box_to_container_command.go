package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignBoxToContainerCommandIsNotConstructed = errors.New(
	"AssignBoxToContainerCommand must be created via NewAssignBoxToContainerCommand constructor",
)

// AssignBoxToContainerCommand consolidates a box into a container.
type AssignBoxToContainerCommand struct { //nolint:recvcheck //using for validation
	boxID       kernel.ID
	containerID kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignBoxToContainerCommand creates the command.
func NewAssignBoxToContainerCommand(boxID, containerID kernel.ID) (AssignBoxToContainerCommand, error) {
	cmd := AssignBoxToContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBoxID(boxID),
		cmd.setContainerID(containerID),
	); err != nil {
		return AssignBoxToContainerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignBoxToContainerCommand) Validate() error {
	return c.guard.Validate(ErrAssignBoxToContainerCommandIsNotConstructed)
}

// BoxID returns the box to consolidate.
func (c AssignBoxToContainerCommand) BoxID() kernel.ID {
	return c.boxID
}

// ContainerID returns the target container.
func (c AssignBoxToContainerCommand) ContainerID() kernel.ID {
	return c.containerID
}

func (c *AssignBoxToContainerCommand) setBoxID(boxID kernel.ID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	c.boxID = boxID
	return nil
}

func (c *AssignBoxToContainerCommand) setContainerID(containerID kernel.ID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}

	c.containerID = containerID
	return nil
}
