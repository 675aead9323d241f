package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateContainerCommandIsNotConstructed = errors.New(
		"CreateContainerCommand must be created via NewCreateContainerCommand constructor",
	)
	ErrContainerNameIsRequired = errors.New("container name is required")
)

// CreateContainerCommand requests a new empty shipping container.
type CreateContainerCommand struct { //nolint:recvcheck //using for validation
	containerID kernel.ID
	name        string

	guard guard.ConstructorGuard
}

// NewCreateContainerCommand creates the command.
func NewCreateContainerCommand(containerID kernel.ID, name string) (CreateContainerCommand, error) {
	cmd := CreateContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContainerID(containerID),
		cmd.setName(name),
	); err != nil {
		return CreateContainerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateContainerCommand) Validate() error {
	return c.guard.Validate(ErrCreateContainerCommandIsNotConstructed)
}

// ContainerID returns the identifier for the new container.
func (c CreateContainerCommand) ContainerID() kernel.ID {
	return c.containerID
}

// Name returns the display name.
func (c CreateContainerCommand) Name() string {
	return c.name
}

func (c *CreateContainerCommand) setContainerID(containerID kernel.ID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}

	c.containerID = containerID
	return nil
}

func (c *CreateContainerCommand) setName(name string) error {
	if name == "" {
		return ErrContainerNameIsRequired
	}

	c.name = name
	return nil
}
