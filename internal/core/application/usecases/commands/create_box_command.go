package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateBoxCommandIsNotConstructed = errors.New(
		"CreateBoxCommand must be created via NewCreateBoxCommand constructor",
	)
	ErrBoxNameIsRequired = errors.New("box name is required")
)

// CreateBoxCommand requests a new empty box.
type CreateBoxCommand struct { //nolint:recvcheck //using for validation
	boxID kernel.ID
	name  string

	guard guard.ConstructorGuard
}

// NewCreateBoxCommand creates the command. The name is the label staff use
// on the warehouse floor and must not be empty.
func NewCreateBoxCommand(boxID kernel.ID, name string) (CreateBoxCommand, error) {
	cmd := CreateBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBoxID(boxID),
		cmd.setName(name),
	); err != nil {
		return CreateBoxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBoxCommand) Validate() error {
	return c.guard.Validate(ErrCreateBoxCommandIsNotConstructed)
}

// BoxID returns the identifier for the new box.
func (c CreateBoxCommand) BoxID() kernel.ID {
	return c.boxID
}

// Name returns the display name.
func (c CreateBoxCommand) Name() string {
	return c.name
}

func (c *CreateBoxCommand) setBoxID(boxID kernel.ID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	c.boxID = boxID
	return nil
}

func (c *CreateBoxCommand) setName(name string) error {
	if name == "" {
		return ErrBoxNameIsRequired
	}

	c.name = name
	return nil
}
