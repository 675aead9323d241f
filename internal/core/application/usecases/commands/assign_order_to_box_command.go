package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignOrderToBoxCommandIsNotConstructed = errors.New(
	"AssignOrderToBoxCommand must be created via NewAssignOrderToBoxCommand constructor",
)

// AssignOrderToBoxCommand places a packed-ready order into a box.
type AssignOrderToBoxCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	boxID   kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignOrderToBoxCommand creates the command.
func NewAssignOrderToBoxCommand(orderID, boxID kernel.ID) (AssignOrderToBoxCommand, error) {
	cmd := AssignOrderToBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBoxID(boxID),
	); err != nil {
		return AssignOrderToBoxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderToBoxCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderToBoxCommandIsNotConstructed)
}

// OrderID returns the order to pack.
func (c AssignOrderToBoxCommand) OrderID() kernel.ID {
	return c.orderID
}

// BoxID returns the target box.
func (c AssignOrderToBoxCommand) BoxID() kernel.ID {
	return c.boxID
}

func (c *AssignOrderToBoxCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderToBoxCommand) setBoxID(boxID kernel.ID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	c.boxID = boxID
	return nil
}
