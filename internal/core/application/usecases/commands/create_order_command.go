package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrClientRefIsRequired   = errors.New("clientRef is required")
	ErrDescriptionIsRequired = errors.New("description is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// CreateOrderCommand represents a request to register a freshly submitted
// order. Pricing and physical data are unknown at this point; staff fill
// them in at quoting time.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.ID
	clientRef   string
	description string
	quantity    int
	freightMode kernel.FreightMode

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the id, the non-empty client reference and description, a
// positive quantity and a known freight mode.
func NewCreateOrderCommand(orderID kernel.ID, clientRef, description string,
	quantity int, freightMode kernel.FreightMode) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientRef(clientRef),
		cmd.setDescription(description),
		cmd.setQuantity(quantity),
		cmd.setFreightMode(freightMode),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// ClientRef returns the payer-facing reference.
func (c CreateOrderCommand) ClientRef() string {
	return c.clientRef
}

// Description returns the product description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Quantity returns the ordered unit count.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// FreightMode returns the requested shipping mode.
func (c CreateOrderCommand) FreightMode() kernel.FreightMode {
	return c.freightMode
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientRef(clientRef string) error {
	if clientRef == "" {
		return ErrClientRefIsRequired
	}

	c.clientRef = clientRef
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setFreightMode(mode kernel.FreightMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.freightMode = mode
	return nil
}
