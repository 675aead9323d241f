package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/kernel"
)

// BoxRepository defines the persistence contract for box aggregates.
type BoxRepository interface {
	// Add persists a new box aggregate to storage.
	Add(ctx context.Context, aggregate *box.Box) error

	// Update persists changes to an existing box aggregate.
	Update(ctx context.Context, aggregate *box.Box) error

	// Delete removes a box row. The caller enforces the deletability guard.
	Delete(ctx context.Context, id kernel.ID) error

	// Get retrieves a box aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no such row exists.
	Get(ctx context.Context, id kernel.ID) (*box.Box, error)

	// GetAllByContainer retrieves every box currently inside the container.
	// Used by the send cascade and the unpack flow.
	GetAllByContainer(ctx context.Context, containerID kernel.ID) ([]*box.Box, error)
}
