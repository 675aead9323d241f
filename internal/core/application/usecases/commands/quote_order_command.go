package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrQuoteOrderCommandIsNotConstructed = errors.New(
	"QuoteOrderCommand must be created via NewQuoteOrderCommand constructor",
)

// QuoteOrderCommand carries the pricing inputs staff supply when quoting an
// order: source-currency prices and the measured dimensions and weight.
// Quoting an already-quoted order before payment overwrites the previous
// charge.
type QuoteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.ID
	unitPrice    kernel.Money
	freightPrice kernel.Money
	dims         kernel.Dimensions

	guard guard.ConstructorGuard
}

// NewQuoteOrderCommand creates a command to quote an order. Prices must be
// constructed Money values; dimensions may be zero, which the engine treats
// as a data-quality concern rather than an error.
func NewQuoteOrderCommand(orderID kernel.ID, unitPrice, freightPrice kernel.Money,
	dims kernel.Dimensions) (QuoteOrderCommand, error) {
	cmd := QuoteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUnitPrice(unitPrice),
		cmd.setFreightPrice(freightPrice),
		cmd.setDims(dims),
	); err != nil {
		return QuoteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c QuoteOrderCommand) Validate() error {
	return c.guard.Validate(ErrQuoteOrderCommandIsNotConstructed)
}

// OrderID returns the order to quote.
func (c QuoteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// UnitPrice returns the per-unit price in the source currency.
func (c QuoteOrderCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// FreightPrice returns the flat freight price in the source currency.
func (c QuoteOrderCommand) FreightPrice() kernel.Money {
	return c.freightPrice
}

// Dims returns the measured dimensions and weight.
func (c QuoteOrderCommand) Dims() kernel.Dimensions {
	return c.dims
}

func (c *QuoteOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *QuoteOrderCommand) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	c.unitPrice = unitPrice
	return nil
}

func (c *QuoteOrderCommand) setFreightPrice(freightPrice kernel.Money) error {
	if err := freightPrice.Validate(); err != nil {
		return err
	}

	c.freightPrice = freightPrice
	return nil
}

func (c *QuoteOrderCommand) setDims(dims kernel.Dimensions) error {
	if err := dims.Validate(); err != nil {
		return err
	}

	c.dims = dims
	return nil
}
