package box

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a box. The numeric codes are part
// of the persistence contract: anything at or above Shipped means the box has
// left and can no longer be mutated.
//
// State transitions:
//
//	Open(1) ──assignToContainer──> InContainer(2) ──container send──> Shipped(4)
//	   │  ▲                              │
//	   │  └───────────unpack─────────────┘
//	   └──sendDirectly (air only)──> Shipped(4)
type Status int

const (
	// Open means the box accepts and releases orders freely.
	Open Status = 1

	// InContainer means the box was placed in a loading container.
	InContainer Status = 2

	// shippedThreshold is the lowest code that counts as shipped.
	shippedThreshold Status = 3

	// Shipped mirrors the shipment of the box's container, or a direct air
	// send. Terminal: a shipped box cannot accept orders, be unpacked, or be
	// deleted.
	Shipped Status = 4
)

func statusNames() map[Status]string {
	return map[Status]string{
		Open:        "Open",
		InContainer: "InContainer",
		Shipped:     "Shipped",
	}
}

// Validate checks that the status is one of the defined codes.
func (s Status) Validate() error {
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid box status", int(s)))
	}
	return nil
}

// String implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "Unknown"
}

// Int returns the numeric code.
func (s Status) Int() int {
	return int(s)
}

// IsShipped reports whether the box has left the origin country.
func (s Status) IsShipped() bool {
	return s >= shippedThreshold
}
