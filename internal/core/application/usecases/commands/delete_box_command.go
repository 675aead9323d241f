package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteBoxCommandIsNotConstructed = errors.New(
	"DeleteBoxCommand must be created via NewDeleteBoxCommand constructor",
)

// DeleteBoxCommand removes a box administratively. Shipped boxes are
// immutable and cannot be deleted.
type DeleteBoxCommand struct { //nolint:recvcheck //using for validation
	boxID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteBoxCommand creates the command.
func NewDeleteBoxCommand(boxID kernel.ID) (DeleteBoxCommand, error) {
	cmd := DeleteBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBoxID(boxID); err != nil {
		return DeleteBoxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBoxCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBoxCommandIsNotConstructed)
}

// BoxID returns the box to delete.
func (c DeleteBoxCommand) BoxID() kernel.ID {
	return c.boxID
}

func (c *DeleteBoxCommand) setBoxID(boxID kernel.ID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	c.boxID = boxID
	return nil
}
