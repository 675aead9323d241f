package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrProposeAlternativeCommandIsNotConstructed = errors.New(
	"ProposeAlternativeCommand must be created via NewProposeAlternativeCommand constructor",
)

// ProposeAlternativeCommand raises or clears the alternative-proposal flag:
// staff found a substitute product and await the payer's decision. The flag
// is a sub-status next to the lifecycle state, not a state of its own.
type ProposeAlternativeCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	proposed bool

	guard guard.ConstructorGuard
}

// NewProposeAlternativeCommand creates the command.
func NewProposeAlternativeCommand(orderID kernel.ID, proposed bool) (ProposeAlternativeCommand, error) {
	cmd := ProposeAlternativeCommand{
		proposed: proposed,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ProposeAlternativeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProposeAlternativeCommand) Validate() error {
	return c.guard.Validate(ErrProposeAlternativeCommandIsNotConstructed)
}

// OrderID returns the order the proposal concerns.
func (c ProposeAlternativeCommand) OrderID() kernel.ID {
	return c.orderID
}

// Proposed reports whether the flag is being raised or cleared.
func (c ProposeAlternativeCommand) Proposed() bool {
	return c.proposed
}

func (c *ProposeAlternativeCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
