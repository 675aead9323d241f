package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// OrderTransition names a lifecycle transition that needs no payload beyond
// the order id. Quoting, box assignment and the alternative-proposal flag
// carry payloads and have their own commands.
type OrderTransition string

const (
	// TransitionUnderReview moves a received order into staff review.
	TransitionUnderReview OrderTransition = "underReview"

	// TransitionReject declines the order. Before a quote the rejection is
	// final; after a quote the order stays payable for a retry.
	TransitionReject OrderTransition = "reject"

	// TransitionConfirmPayment records the payer's payment.
	TransitionConfirmPayment OrderTransition = "confirmPayment"

	// TransitionValidatePayment records staff validation of the payment,
	// releasing the order for packing.
	TransitionValidatePayment OrderTransition = "validatePayment"

	// TransitionCancel withdraws the order before shipment. Irreversible.
	TransitionCancel OrderTransition = "cancel"

	// Downstream progress transitions, driven by batch jobs after shipment.
	TransitionCustoms          OrderTransition = "customs"
	TransitionArrived          OrderTransition = "arrived"
	TransitionReadyForDelivery OrderTransition = "readyForDelivery"
	TransitionDelivered        OrderTransition = "delivered"
)

func knownTransitions() map[OrderTransition]struct{} {
	return map[OrderTransition]struct{}{
		TransitionUnderReview:      {},
		TransitionReject:           {},
		TransitionConfirmPayment:   {},
		TransitionValidatePayment:  {},
		TransitionCancel:           {},
		TransitionCustoms:          {},
		TransitionArrived:          {},
		TransitionReadyForDelivery: {},
		TransitionDelivered:        {},
	}
}

// TransitionOrderCommand requests a payload-free lifecycle transition on a
// single order.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	transition OrderTransition

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a transition command. The transition
// must be one of the defined names; whether it is allowed from the order's
// current state is decided by the aggregate, not here.
func NewTransitionOrderCommand(orderID kernel.ID, transition OrderTransition) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTransition(transition),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Transition returns the requested transition.
func (c TransitionOrderCommand) Transition() OrderTransition {
	return c.transition
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTransition(transition OrderTransition) error {
	if _, ok := knownTransitions()[transition]; !ok {
		return fmt.Errorf("unknown order transition %q", transition)
	}

	c.transition = transition
	return nil
}
