package kernel

import (
	"fmt"
	"strconv"

	"fulfillment/internal/pkg/errs"
)

// ID is the integer identifier for orders, boxes, and containers. The backing
// store assigns ids; a valid ID is always positive.
type ID int64

// NewID creates an ID from a raw integer.
// Returns an error if the value is not positive.
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the ID is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not positive", int64(id)))
	}
	return nil
}

// Int64 returns the raw integer value.
func (id ID) Int64() int64 {
	return int64(id)
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id == 0
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
