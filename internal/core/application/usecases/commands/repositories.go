// Package commands contains the business operations that modify system
// state. All commands follow one pattern: a guarded command value object,
// validation, transaction management, persistence, and (for payer-visible
// order transitions) a post-commit notification that never fails the
// command.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest interface that covers the
// aggregates they touch.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BoxRepoFactory provides the box repository within a transaction.
	BoxRepoFactory interface {
		BoxRepository() ports.BoxRepository
	}

	// ContainerRepoFactory provides the container repository within a
	// transaction.
	ContainerRepoFactory interface {
		ContainerRepository() ports.ContainerRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BoxUoW manages transactions for operations spanning boxes and their
	// member orders.
	BoxUoW interface {
		TxManager
		OrderRepoFactory
		BoxRepoFactory
	}

	// BoxUoWFactory creates new box unit of work instances.
	BoxUoWFactory interface {
		Create() BoxUoW
	}

	// UoW manages transactions across orders, boxes and containers. Used by
	// the container cascades and the unpack flow.
	UoW interface {
		TxManager
		OrderRepoFactory
		BoxRepoFactory
		ContainerRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
