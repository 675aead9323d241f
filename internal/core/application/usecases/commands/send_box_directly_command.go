package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSendBoxDirectlyCommandIsNotConstructed = errors.New(
	"SendBoxDirectlyCommand must be created via NewSendBoxDirectlyCommand constructor",
)

// SendBoxDirectlyCommand ships a box without container consolidation. Only
// boxes holding exclusively air orders may bypass consolidation.
type SendBoxDirectlyCommand struct { //nolint:recvcheck //using for validation
	boxID kernel.ID

	guard guard.ConstructorGuard
}

// NewSendBoxDirectlyCommand creates the command.
func NewSendBoxDirectlyCommand(boxID kernel.ID) (SendBoxDirectlyCommand, error) {
	cmd := SendBoxDirectlyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBoxID(boxID); err != nil {
		return SendBoxDirectlyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendBoxDirectlyCommand) Validate() error {
	return c.guard.Validate(ErrSendBoxDirectlyCommandIsNotConstructed)
}

// BoxID returns the box to ship.
func (c SendBoxDirectlyCommand) BoxID() kernel.ID {
	return c.boxID
}

func (c *SendBoxDirectlyCommand) setBoxID(boxID kernel.ID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	c.boxID = boxID
	return nil
}
