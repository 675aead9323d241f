// Package ports defines the contracts between the application core and its
// adapters: repositories and the unit of work on the persistence side, plus
// the tariff store, rate provider, payer notifier and change feed consumed by
// jobs and the reconciler.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no such row exists.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAllByBox retrieves every order currently assigned to the box.
	// Used by cascades and by the freight-mode homogeneity check.
	GetAllByBox(ctx context.Context, boxID kernel.ID) ([]*order.Order, error)
}
