package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as an integer code.
// The codes are part of the persistence contract and are shared with every
// actor reading the store, so their numeric values are fixed.
//
// State transitions:
//
//	Received(1)/UnderReview(2) ──quote──> Quoted(3) ──confirmPayment──> PaymentConfirmed(4)
//	     │                                   │  ▲                            │
//	  reject -> RejectedFinal(-2)         reject │ (re-quote)          validatePayment
//	                                         ▼  │                            ▼
//	                              RejectedAfterQuote(-1) ─confirmPayment─> ReadyToPack(5)
//	                                                                         │ assign/unassign
//	                                                                         ▼
//	                              Packed(6) / PackedInContainer(7) / Consolidated(8)
//	                                                                         │ cascade
//	                                                                         ▼
//	                       Sent(9) -> InCustoms(10) -> Arrived(11) -> ReadyForDelivery(12) -> Delivered(13)
//
// Cancel is allowed from any state below Sent and moves the order to
// Cancelled(0). Delivered and the cancellation codes are terminal.
type Status int

const (
	// RejectedFinal marks an order rejected before it was ever quoted.
	// Terminal.
	RejectedFinal Status = -2

	// RejectedAfterQuote marks an order rejected after quoting. It keeps its
	// charge and is surfaced to the payer as payable-again, so payment
	// confirmation is still accepted from this state.
	RejectedAfterQuote Status = -1

	// Cancelled marks an order cancelled by staff or the client. Terminal.
	Cancelled Status = 0

	// Received is the initial state at submission.
	Received Status = 1

	// UnderReview marks an order being looked at by staff, still unquoted.
	UnderReview Status = 2

	// Quoted means a final charge has been computed and fixed; the order is
	// awaiting payment.
	Quoted Status = 3

	// PaymentConfirmed means the payer reported payment; it is being checked.
	PaymentConfirmed Status = 4

	// ReadyToPack means payment was validated and the order can be packed.
	ReadyToPack Status = 5

	// Packed means the order sits in an open box.
	Packed Status = 6

	// PackedInContainer means the order's box was placed in a loading
	// container.
	PackedInContainer Status = 7

	// Consolidated is kept distinct from PackedInContainer in storage but is
	// treated identically everywhere it is read.
	Consolidated Status = 8

	// Sent means the shipment left the origin country.
	Sent Status = 9

	// InCustoms means the shipment is held in customs clearance.
	InCustoms Status = 10

	// Arrived means the shipment reached the destination country.
	Arrived Status = 11

	// ReadyForDelivery means the order awaits final-mile delivery.
	ReadyForDelivery Status = 12

	// Delivered is the successful terminal state.
	Delivered Status = 13
)

func statusNames() map[Status]string {
	return map[Status]string{
		RejectedFinal:      "RejectedFinal",
		RejectedAfterQuote: "RejectedAfterQuote",
		Cancelled:          "Cancelled",
		Received:           "Received",
		UnderReview:        "UnderReview",
		Quoted:             "Quoted",
		PaymentConfirmed:   "PaymentConfirmed",
		ReadyToPack:        "ReadyToPack",
		Packed:             "Packed",
		PackedInContainer:  "PackedInContainer",
		Consolidated:       "Consolidated",
		Sent:               "Sent",
		InCustoms:          "InCustoms",
		Arrived:            "Arrived",
		ReadyForDelivery:   "ReadyForDelivery",
		Delivered:          "Delivered",
	}
}

// Validate checks that the status is one of the defined codes.
func (s Status) Validate() error {
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", int(s)))
	}
	return nil
}

// String implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "Unknown"
}

// Int returns the numeric code.
func (s Status) Int() int {
	return int(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == RejectedFinal
}

// IsCancelledOrRejected reports whether the order sits on a cancellation
// branch. RejectedAfterQuote is included even though it remains payable.
func (s Status) IsCancelledOrRejected() bool {
	return s <= Cancelled
}

// IsQuotedOrLater reports whether a charge has been fixed for the order.
func (s Status) IsQuotedOrLater() bool {
	return s >= Quoted || s == RejectedAfterQuote
}

// IsShippedOrLater reports whether the order has left the origin country.
// Orders at or past Sent can no longer be quoted, cancelled, or repacked.
func (s Status) IsShippedOrLater() bool {
	return s >= Sent
}

// InLoadingContainer reports whether the order sits in a box inside a
// loading container. PackedInContainer and Consolidated are read as one
// logical state by every consumer.
func (s Status) InLoadingContainer() bool {
	return s == PackedInContainer || s == Consolidated
}
