package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// aggregateName is the label used in precondition errors for this aggregate.
const aggregateName = "order"

// Order represents a single customer purchase request tracked through the
// numeric lifecycle from submission to delivery. It is the aggregate root for
// quoting, payment, and packing operations.
//
// Order maintains these invariants:
//   - Quantity is positive
//   - No final charge exists before the order is quoted; once quoted the
//     charge is fixed until a re-quote
//   - An order belongs to at most one box at a time
//   - Guard violations never mutate state
//
// Transitions past Sent are cascade-only: they are driven by box/container
// shipment or downstream fulfillment, never by a client-facing action on the
// order alone.
type Order struct {
	// id is the store-assigned identifier
	id kernel.ID

	// clientRef identifies the submitting customer
	clientRef string

	// description is the free-text product description
	description string

	// quantity is the number of units requested (always positive)
	quantity int

	// status is the current lifecycle state
	status Status

	// freightMode determines pricing formula and packing eligibility
	freightMode kernel.FreightMode

	// unitPrice is the per-unit cost in the source currency
	unitPrice kernel.Money

	// freightPrice is the domestic freight cost in the source currency
	freightPrice kernel.Money

	// dims holds the physical measurements used for the freight surcharge
	dims kernel.Dimensions

	// finalCharge is the settlement-currency charge, nil until quoted
	finalCharge *kernel.Money

	// boxID references the containing box, nil when unpacked
	boxID *kernel.ID

	// alternativeProposal marks that staff proposed a substitute product
	alternativeProposal bool

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly submitted order in Received state with zero
// prices and unknown dimensions. Staff fill in pricing data at quoting time.
func NewOrder(id kernel.ID, clientRef, description string, quantity int, freightMode kernel.FreightMode) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Received,
		unitPrice:     kernel.ZeroMoney(),
		freightPrice:  kernel.ZeroMoney(),
		dims:          kernel.ZeroDimensions(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientRef(clientRef),
		o.setDescription(description),
		o.setQuantity(quantity),
		o.setFreightMode(freightMode),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation transition. The stored status must be a defined code.
func RestoreOrder(
	id kernel.ID,
	clientRef, description string,
	quantity int,
	status Status,
	freightMode kernel.FreightMode,
	unitPrice, freightPrice kernel.Money,
	dims kernel.Dimensions,
	finalCharge *kernel.Money,
	boxID *kernel.ID,
	alternativeProposal bool,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		alternativeProposal: alternativeProposal,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientRef(clientRef),
		o.setDescription(description),
		o.setQuantity(quantity),
		o.setFreightMode(freightMode),
		status.Validate(),
		unitPrice.Validate(),
		freightPrice.Validate(),
		dims.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.unitPrice = unitPrice
	o.freightPrice = freightPrice
	o.dims = dims
	o.finalCharge = finalCharge
	o.boxID = boxID

	return o, nil
}

// Validate ensures the Order instance was properly constructed and that its
// cross-field invariants hold.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	if o.status.IsQuotedOrLater() && o.status > Cancelled && o.finalCharge == nil {
		return errs.NewValueIsRequiredError("finalCharge")
	}
	return nil
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// ClientRef returns the submitting customer reference.
func (o *Order) ClientRef() string {
	return o.clientRef
}

// Description returns the product description.
func (o *Order) Description() string {
	return o.description
}

// Quantity returns the number of units requested.
func (o *Order) Quantity() int {
	return o.quantity
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// FreightMode returns the order's freight mode.
func (o *Order) FreightMode() kernel.FreightMode {
	return o.freightMode
}

// UnitPrice returns the per-unit cost in the source currency.
func (o *Order) UnitPrice() kernel.Money {
	return o.unitPrice
}

// FreightPrice returns the domestic freight cost in the source currency.
func (o *Order) FreightPrice() kernel.Money {
	return o.freightPrice
}

// Dimensions returns the physical measurements.
func (o *Order) Dimensions() kernel.Dimensions {
	return o.dims
}

// FinalCharge returns the settlement-currency charge, or nil if the order
// has not been quoted.
func (o *Order) FinalCharge() *kernel.Money {
	return o.finalCharge
}

// Box returns the containing box's ID, or nil when unpacked.
func (o *Order) Box() *kernel.ID {
	return o.boxID
}

// AlternativeProposal reports whether staff proposed a substitute product.
func (o *Order) AlternativeProposal() bool {
	return o.alternativeProposal
}

// CreatedAt returns the submission time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ApplyQuote records staff pricing data and the computed settlement-currency
// charge, fixing the charge until a re-quote.
//
// Allowed while the order is pending (Received, UnderReview), already Quoted
// (re-quote overwrites the previous charge), or RejectedAfterQuote. Once
// payment is confirmed the quote is sealed and re-quoting is rejected.
func (o *Order) ApplyQuote(unitPrice, freightPrice kernel.Money, dims kernel.Dimensions, charge kernel.Money) error {
	if err := errors.Join(unitPrice.Validate(), freightPrice.Validate(), dims.Validate(), charge.Validate()); err != nil {
		return err
	}

	switch o.status {
	case Received, UnderReview, Quoted, RejectedAfterQuote:
	default:
		return errs.NewPreconditionFailedError(aggregateName, o.id, "quote", o.status.Int())
	}

	o.unitPrice = unitPrice
	o.freightPrice = freightPrice
	o.dims = dims
	o.finalCharge = &charge
	o.transition(Quoted)
	return nil
}

// MarkUnderReview moves a freshly received order into staff review.
func (o *Order) MarkUnderReview() error {
	if o.status != Received {
		return errs.NewPreconditionFailedError(aggregateName, o.id, "markUnderReview", o.status.Int())
	}
	o.transition(UnderReview)
	return nil
}

// Reject declines the order. A pending order goes to RejectedFinal; a quoted
// order goes to RejectedAfterQuote and remains payable, so rejection after
// quoting is a transition, not a deletion.
func (o *Order) Reject() error {
	switch o.status {
	case Received, UnderReview:
		o.transition(RejectedFinal)
		return nil
	case Quoted:
		o.transition(RejectedAfterQuote)
		return nil
	default:
		return errs.NewPreconditionFailedError(aggregateName, o.id, "reject", o.status.Int())
	}
}

// ConfirmPayment records that the payer reported payment. Accepted from
// Quoted and, as a retry path, from RejectedAfterQuote.
func (o *Order) ConfirmPayment() error {
	if o.status != Quoted && o.status != RejectedAfterQuote {
		return errs.NewPreconditionFailedError(aggregateName, o.id, "confirmPayment", o.status.Int())
	}
	o.transition(PaymentConfirmed)
	return nil
}

// ValidatePayment records staff validation of a confirmed payment, making
// the order eligible for packing.
func (o *Order) ValidatePayment() error {
	if o.status != PaymentConfirmed {
		return errs.NewPreconditionFailedError(aggregateName, o.id, "validatePayment", o.status.Int())
	}
	o.transition(ReadyToPack)
	return nil
}

// Cancel irreversibly cancels the order. Allowed from any state before the
// shipment leaves the origin country.
func (o *Order) Cancel() error {
	if o.status.IsShippedOrLater() || o.status.IsTerminal() {
		return errs.NewPreconditionFailedError(aggregateName, o.id, "cancel", o.status.Int())
	}
	o.transition(Cancelled)
	return nil
}

// AssignToBox places the order into a box. The caller (the box aggregate
// manager) is responsible for freight-mode compatibility and shipped-state
// checks; this method enforces the order-side guards only.
//
// containerLoading reports whether the box already sits inside a loading
// container, which decides between Packed and PackedInContainer.
func (o *Order) AssignToBox(boxID kernel.ID, containerLoading bool) error {
	if err := boxID.Validate(); err != nil {
		return err
	}
	if o.status != ReadyToPack {
		return errs.NewPreconditionFailedError(aggregateName, o.id, "assignToBox", o.status.Int())
	}
	if o.boxID != nil {
		return errs.NewPreconditionFailedErrorWithCause(aggregateName, o.id, "assignToBox", o.status.Int(),
			fmt.Errorf("order already belongs to box %s", o.boxID))
	}

	o.boxID = &boxID
	if containerLoading {
		o.transition(PackedInContainer)
	} else {
		o.transition(Packed)
	}
	return nil
}

// UnassignFromBox removes the order from its box and returns it to
// ReadyToPack. The caller verifies the box and container have not shipped.
func (o *Order) UnassignFromBox() error {
	if o.status != Packed && !o.status.InLoadingContainer() {
		return errs.NewPreconditionFailedError(aggregateName, o.id, "unassignFromBox", o.status.Int())
	}

	o.boxID = nil
	o.transition(ReadyToPack)
	return nil
}

// MarkInLoadingContainer cascades the box-to-container assignment onto the
// order. Idempotent for orders already in a loading container.
func (o *Order) MarkInLoadingContainer() error {
	if o.status.InLoadingContainer() {
		return nil
	}
	if o.status != Packed {
		return errs.NewPreconditionFailedError(aggregateName, o.id, "markInLoadingContainer", o.status.Int())
	}
	o.transition(PackedInContainer)
	return nil
}

// MarkSent cascades a box or container shipment onto the order.
func (o *Order) MarkSent() error {
	if o.status != Packed && !o.status.InLoadingContainer() {
		return errs.NewPreconditionFailedError(aggregateName, o.id, "markSent", o.status.Int())
	}
	o.transition(Sent)
	return nil
}

// MarkInCustoms records arrival at customs clearance.
func (o *Order) MarkInCustoms() error {
	return o.advance(Sent, InCustoms, "markInCustoms")
}

// MarkArrived records arrival in the destination country.
func (o *Order) MarkArrived() error {
	return o.advance(InCustoms, Arrived, "markArrived")
}

// MarkReadyForDelivery records readiness for final-mile delivery.
func (o *Order) MarkReadyForDelivery() error {
	return o.advance(Arrived, ReadyForDelivery, "markReadyForDelivery")
}

// MarkDelivered records successful delivery. Terminal.
func (o *Order) MarkDelivered() error {
	return o.advance(ReadyForDelivery, Delivered, "markDelivered")
}

// RevertStatus restores a previous state after a failed cascade step. It is
// the compensating action for MarkSent and must only be used by the
// shipment saga.
func (o *Order) RevertStatus(previous Status) error {
	if err := previous.Validate(); err != nil {
		return err
	}
	o.transition(previous)
	return nil
}

// ProposeAlternative flags the order with an alternative-product proposal.
// Only meaningful while the order is still actionable by staff.
func (o *Order) ProposeAlternative(flag bool) error {
	if o.status.IsShippedOrLater() || o.status.IsTerminal() {
		return errs.NewPreconditionFailedError(aggregateName, o.id, "proposeAlternative", o.status.Int())
	}
	o.alternativeProposal = flag
	o.touch()
	return nil
}

func (o *Order) advance(from, to Status, transitionName string) error {
	if o.status != from {
		return errs.NewPreconditionFailedError(aggregateName, o.id, transitionName, o.status.Int())
	}
	o.transition(to)
	return nil
}

func (o *Order) transition(to Status) {
	o.status = to
	o.touch()
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientRef(clientRef string) error {
	if clientRef == "" {
		return errs.NewValueIsRequiredError("clientRef")
	}
	o.clientRef = clientRef
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setFreightMode(mode kernel.FreightMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.freightMode = mode
	return nil
}
