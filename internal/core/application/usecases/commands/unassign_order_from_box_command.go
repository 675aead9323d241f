package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUnassignOrderFromBoxCommandIsNotConstructed = errors.New(
	"UnassignOrderFromBoxCommand must be created via NewUnassignOrderFromBoxCommand constructor",
)

// UnassignOrderFromBoxCommand takes a packed order back out of its box.
type UnassignOrderFromBoxCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewUnassignOrderFromBoxCommand creates the command.
func NewUnassignOrderFromBoxCommand(orderID kernel.ID) (UnassignOrderFromBoxCommand, error) {
	cmd := UnassignOrderFromBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UnassignOrderFromBoxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignOrderFromBoxCommand) Validate() error {
	return c.guard.Validate(ErrUnassignOrderFromBoxCommandIsNotConstructed)
}

// OrderID returns the order to release.
func (c UnassignOrderFromBoxCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *UnassignOrderFromBoxCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
