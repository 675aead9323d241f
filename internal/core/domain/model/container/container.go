package container

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrContainerIsNotConstructed is returned when a Container instance was
	// not created through NewContainer or RestoreContainer.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer or RestoreContainer constructor")
)

const aggregateName = "container"

// Container represents a maritime shipping container consolidating boxes.
// Boxes reference the container via container_id; the container itself only
// carries lifecycle state and carrier tracking metadata.
type Container struct {
	id        kernel.ID
	name      string
	status    Status
	tracking  TrackingInfo
	shippedAt *time.Time
	createdAt time.Time

	isConstructed bool
}

// NewContainer creates an empty open container.
func NewContainer(id kernel.ID, name string) (*Container, error) {
	c := &Container{
		status:        Open,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreContainer reconstructs a container from persistence.
func RestoreContainer(id kernel.ID, name string, status Status, tracking TrackingInfo,
	shippedAt *time.Time, createdAt time.Time) (*Container, error) {
	c := &Container{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(c.setID(id), c.setName(name), status.Validate()); err != nil {
		return nil, err
	}

	c.status = status
	c.tracking = tracking
	c.shippedAt = shippedAt
	return c, nil
}

// Validate ensures the Container instance was properly constructed.
func (c *Container) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContainerIsNotConstructed
	}
	return nil
}

// ID returns the container's identifier.
func (c *Container) ID() kernel.ID {
	return c.id
}

// Name returns the display name.
func (c *Container) Name() string {
	return c.name
}

// Status returns the current state.
func (c *Container) Status() Status {
	return c.status
}

// Tracking returns the carrier metadata recorded at send time.
func (c *Container) Tracking() TrackingInfo {
	return c.tracking
}

// ShippedAt returns the send time, or nil if the container has not shipped.
func (c *Container) ShippedAt() *time.Time {
	return c.shippedAt
}

// CreatedAt returns the creation time.
func (c *Container) CreatedAt() time.Time {
	return c.createdAt
}

// ReceiveBox records that a box was placed in the container. The first box
// promotes Open to Loading; further boxes are a no-op on the state. A shipped
// container accepts nothing.
func (c *Container) ReceiveBox() error {
	if c.status.IsShipped() {
		return errs.NewPreconditionFailedError(aggregateName, c.id, "receiveBox", c.status.Int())
	}
	if c.status < Loading {
		c.status = Loading
	}
	return nil
}

// EnsureAcceptsBoxes rejects box placement and removal on a shipped
// container without mutating state.
func (c *Container) EnsureAcceptsBoxes() error {
	if c.status.IsShipped() {
		return errs.NewPreconditionFailedError(aggregateName, c.id, "modifyBoxes", c.status.Int())
	}
	return nil
}

// ReleaseBox records that a box was unpacked. When the last box leaves the
// container returns to Open; remaining reports whether boxes are left.
func (c *Container) ReleaseBox(remaining bool) error {
	if c.status.IsShipped() {
		return errs.NewPreconditionFailedError(aggregateName, c.id, "releaseBox", c.status.Int())
	}
	if c.status != Loading {
		return errs.NewPreconditionFailedErrorWithCause(aggregateName, c.id, "releaseBox", c.status.Int(),
			errors.New("container has no boxes"))
	}
	if !remaining {
		c.status = Open
	}
	return nil
}

// MarkShipped sends the container. Only a loading container, one that holds
// at least one box, may be sent. Tracking metadata is stored as given: the
// send never fails over incomplete metadata, the caller surfaces a
// data-quality warning instead.
func (c *Container) MarkShipped(tracking TrackingInfo) error {
	if c.status != Loading {
		return errs.NewPreconditionFailedError(aggregateName, c.id, "send", c.status.Int())
	}

	now := time.Now().UTC()
	c.status = Shipped
	c.tracking = tracking
	c.shippedAt = &now
	return nil
}

// RevertStatus restores a previous state after a failed cascade step. It is
// the compensating action for MarkShipped and must only be used by the
// shipment saga.
func (c *Container) RevertStatus(previous Status) error {
	if err := previous.Validate(); err != nil {
		return err
	}
	if c.status == Shipped && previous != Shipped {
		c.tracking = TrackingInfo{}
		c.shippedAt = nil
	}
	c.status = previous
	return nil
}

// EnsureDeletable rejects deletion of a shipped container.
func (c *Container) EnsureDeletable() error {
	if c.status.IsShipped() {
		return errs.NewPreconditionFailedError(aggregateName, c.id, "delete", c.status.Int())
	}
	return nil
}

func (c *Container) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Container) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
