package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUnpackBoxCommandIsNotConstructed = errors.New(
	"UnpackBoxCommand must be created via NewUnpackBoxCommand constructor",
)

// UnpackBoxCommand takes a box back out of its container, the inverse of
// consolidation.
type UnpackBoxCommand struct { //nolint:recvcheck //using for validation
	boxID kernel.ID

	guard guard.ConstructorGuard
}

// NewUnpackBoxCommand creates the command.
func NewUnpackBoxCommand(boxID kernel.ID) (UnpackBoxCommand, error) {
	cmd := UnpackBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBoxID(boxID); err != nil {
		return UnpackBoxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnpackBoxCommand) Validate() error {
	return c.guard.Validate(ErrUnpackBoxCommandIsNotConstructed)
}

// BoxID returns the box to unpack.
func (c UnpackBoxCommand) BoxID() kernel.ID {
	return c.boxID
}

func (c *UnpackBoxCommand) setBoxID(boxID kernel.ID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	c.boxID = boxID
	return nil
}
