// Package queries contains the read-side operations. Queries bypass the
// aggregates and read the rows directly; they never mutate state.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order that is neither delivered nor
// cancelled nor finally rejected, for the staff work queue.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates the query.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one row of the staff work queue.
// FinalCharge is empty until the order has been quoted.
type GetActiveOrdersQueryResponse struct {
	ID                  kernel.ID
	ClientRef           string
	Status              int
	FreightMode         string
	FinalCharge         string
	BoxID               *kernel.ID
	AlternativeProposal bool
}
