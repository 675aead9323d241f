package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetShippedContainersQueryIsNotConstructed = errors.New(
	"GetShippedContainersQuery must be created via NewGetShippedContainersQuery constructor",
)

// GetShippedContainersQuery retrieves containers that have left the origin
// warehouse, with their tracking metadata, for the tracking dashboard.
type GetShippedContainersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShippedContainersQuery creates the query.
func NewGetShippedContainersQuery() GetShippedContainersQuery {
	return GetShippedContainersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShippedContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetShippedContainersQueryIsNotConstructed)
}

// GetShippedContainersQueryResponse is one shipped container with its
// tracking metadata and cargo counts.
type GetShippedContainersQueryResponse struct {
	ID             kernel.ID
	Name           string
	TrackingNumber string
	Carrier        string
	TrackingLink   string
	ETA            *time.Time
	ShippedAt      *time.Time
	Boxes          int
	Orders         int
}
