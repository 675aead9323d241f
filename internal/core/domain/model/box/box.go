package box

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrBoxIsNotConstructed is returned when a Box instance was not created
	// through NewBox or RestoreBox.
	ErrBoxIsNotConstructed = errors.New("Box must be created via NewBox or RestoreBox constructor")
)

const aggregateName = "box"

// Box represents a physical packing unit holding zero or more orders of a
// single freight mode. Boxes are referenced by orders via box_id; the box
// itself never owns order rows.
//
// Invariants enforced here and by the box manager:
//   - All member orders share one freight mode (checked at assignment via
//     AcceptsMode against the modes already present)
//   - A shipped box accepts no orders, cannot be unpacked, and cannot be
//     deleted
//   - Shipped state is reached only through its container's shipment or a
//     direct air send, never independently
type Box struct {
	id          kernel.ID
	name        string
	status      Status
	containerID *kernel.ID
	createdAt   time.Time

	isConstructed bool
}

// NewBox creates an empty open box. The name is required: it is the label
// staff use on the warehouse floor.
func NewBox(id kernel.ID, name string) (*Box, error) {
	b := &Box{
		status:        Open,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(b.setID(id), b.setName(name)); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBox reconstructs a box from persistence.
func RestoreBox(id kernel.ID, name string, status Status, containerID *kernel.ID, createdAt time.Time) (*Box, error) {
	b := &Box{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(b.setID(id), b.setName(name), status.Validate()); err != nil {
		return nil, err
	}

	b.status = status
	b.containerID = containerID
	return b, nil
}

// Validate ensures the Box instance was properly constructed.
func (b *Box) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBoxIsNotConstructed
	}
	return nil
}

// ID returns the box's identifier.
func (b *Box) ID() kernel.ID {
	return b.id
}

// Name returns the display name.
func (b *Box) Name() string {
	return b.name
}

// Status returns the current state.
func (b *Box) Status() Status {
	return b.status
}

// Container returns the containing container's ID, or nil.
func (b *Box) Container() *kernel.ID {
	return b.containerID
}

// CreatedAt returns the creation time.
func (b *Box) CreatedAt() time.Time {
	return b.createdAt
}

// AcceptsMode checks the freight-mode homogeneity invariant: the incoming
// mode must match every mode already present in the box. An empty box
// accepts either mode.
func (b *Box) AcceptsMode(existing []kernel.FreightMode, incoming kernel.FreightMode) error {
	for _, mode := range existing {
		if mode != incoming {
			return errs.NewPreconditionFailedErrorWithCause(aggregateName, b.id, "assignOrder", b.status.Int(),
				fmt.Errorf("box holds %s orders, incoming order is %s", mode, incoming))
		}
	}
	return nil
}

// EnsureAcceptsOrders rejects order assignment and removal on a shipped box.
func (b *Box) EnsureAcceptsOrders() error {
	if b.status.IsShipped() {
		return errs.NewPreconditionFailedError(aggregateName, b.id, "assignOrder", b.status.Int())
	}
	return nil
}

// AssignToContainer places the box into a loading container. The box
// manager verifies the box is non-empty and the container has not shipped.
func (b *Box) AssignToContainer(containerID kernel.ID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}
	if b.status != Open {
		return errs.NewPreconditionFailedError(aggregateName, b.id, "assignToContainer", b.status.Int())
	}

	b.containerID = &containerID
	b.status = InContainer
	return nil
}

// Unpack removes the box from its container and reopens it. Rejected once
// the box has shipped; the caller also verifies the container has not.
func (b *Box) Unpack() error {
	if b.status.IsShipped() {
		return errs.NewPreconditionFailedError(aggregateName, b.id, "unpack", b.status.Int())
	}
	if b.containerID == nil {
		return errs.NewPreconditionFailedErrorWithCause(aggregateName, b.id, "unpack", b.status.Int(),
			errors.New("box is not in a container"))
	}

	b.containerID = nil
	b.status = Open
	return nil
}

// MarkShippedDirect ships an open box without container consolidation.
// Only air shipments may bypass consolidation; the box manager verifies the
// freight mode of every member order before calling this.
func (b *Box) MarkShippedDirect() error {
	if b.status != Open {
		return errs.NewPreconditionFailedError(aggregateName, b.id, "sendDirectly", b.status.Int())
	}
	b.status = Shipped
	return nil
}

// MarkShipped cascades the container's shipment onto the box.
func (b *Box) MarkShipped() error {
	if b.status != InContainer {
		return errs.NewPreconditionFailedError(aggregateName, b.id, "markShipped", b.status.Int())
	}
	b.status = Shipped
	return nil
}

// RevertStatus restores a previous state after a failed cascade step. It is
// the compensating action for MarkShippedDirect and MarkShipped and must
// only be used by the shipment saga.
func (b *Box) RevertStatus(previous Status) error {
	if err := previous.Validate(); err != nil {
		return err
	}
	b.status = previous
	return nil
}

// EnsureDeletable rejects deletion of a shipped box.
func (b *Box) EnsureDeletable() error {
	if b.status.IsShipped() {
		return errs.NewPreconditionFailedError(aggregateName, b.id, "delete", b.status.Int())
	}
	return nil
}

func (b *Box) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Box) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	b.name = name
	return nil
}
