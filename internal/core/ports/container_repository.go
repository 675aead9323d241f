package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/container"
	"fulfillment/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for container
// aggregates.
type ContainerRepository interface {
	// Add persists a new container aggregate to storage.
	Add(ctx context.Context, aggregate *container.Container) error

	// Update persists changes to an existing container aggregate.
	Update(ctx context.Context, aggregate *container.Container) error

	// Delete removes a container row. The caller enforces the deletability
	// guard and that no boxes remain inside.
	Delete(ctx context.Context, id kernel.ID) error

	// Get retrieves a container aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no such row exists.
	Get(ctx context.Context, id kernel.ID) (*container.Container, error)
}
