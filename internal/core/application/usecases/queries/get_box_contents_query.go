package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetBoxContentsQueryIsNotConstructed = errors.New(
	"GetBoxContentsQuery must be created via NewGetBoxContentsQuery constructor",
)

// GetBoxContentsQuery retrieves the orders packed into one box, for the
// packing screens.
type GetBoxContentsQuery struct {
	boxID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetBoxContentsQuery creates a query for the contents of a box.
func NewGetBoxContentsQuery(boxID int64) (GetBoxContentsQuery, error) {
	id, err := kernel.NewID(boxID)
	if err != nil {
		return GetBoxContentsQuery{}, err
	}
	return GetBoxContentsQuery{boxID: id, guard: guard.NewConstructorGuard()}, nil
}

// BoxID returns the identifier of the box being inspected.
func (q GetBoxContentsQuery) BoxID() kernel.ID {
	return q.boxID
}

// Validate ensures the query was created through the constructor.
func (q GetBoxContentsQuery) Validate() error {
	return q.guard.Validate(ErrGetBoxContentsQueryIsNotConstructed)
}

// GetBoxContentsQueryResponse is one order inside the box.
type GetBoxContentsQueryResponse struct {
	ID          kernel.ID
	ClientRef   string
	Description string
	Quantity    int
	Status      int
	FreightMode string
	WeightKg    string
	VolumeM3    string
}
