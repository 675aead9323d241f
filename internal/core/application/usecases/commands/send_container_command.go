package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/container"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrSendContainerCommandIsNotConstructed = errors.New(
	"SendContainerCommand must be created via NewSendContainerCommand constructor",
)

// SendContainerCommand ships a loading container. Tracking metadata is
// optional: a send with incomplete metadata succeeds and surfaces a
// data-quality warning instead of blocking the shipment.
type SendContainerCommand struct { //nolint:recvcheck //using for validation
	containerID    kernel.ID
	trackingNumber string
	carrier        string
	trackingLink   string
	eta            *time.Time

	guard guard.ConstructorGuard
}

// NewSendContainerCommand creates the command.
func NewSendContainerCommand(containerID kernel.ID, trackingNumber, carrier, trackingLink string,
	eta *time.Time) (SendContainerCommand, error) {
	cmd := SendContainerCommand{
		trackingNumber: trackingNumber,
		carrier:        carrier,
		trackingLink:   trackingLink,
		eta:            eta,
		guard:          guard.NewConstructorGuard(),
	}

	if err := cmd.setContainerID(containerID); err != nil {
		return SendContainerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendContainerCommand) Validate() error {
	return c.guard.Validate(ErrSendContainerCommandIsNotConstructed)
}

// ContainerID returns the container to ship.
func (c SendContainerCommand) ContainerID() kernel.ID {
	return c.containerID
}

// Tracking returns the carrier metadata as a value object.
func (c SendContainerCommand) Tracking() container.TrackingInfo {
	return container.TrackingInfo{
		Number:  c.trackingNumber,
		Carrier: c.carrier,
		Link:    c.trackingLink,
		ETA:     c.eta,
	}
}

func (c *SendContainerCommand) setContainerID(containerID kernel.ID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}

	c.containerID = containerID
	return nil
}
