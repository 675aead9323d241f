package container

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipping container.
//
// State transitions:
//
//	Open(1) ──receiveBox──> Loading(2) ──send──> Shipped(3) [terminal]
//
// Boxes and orders are driven transitively by the send cascade; they never
// reach a shipped state ahead of their container.
type Status int

const (
	// Open means the container has no boxes yet. Receiving the first box
	// promotes it to Loading.
	Open Status = 1

	// Loading means the container holds at least one box.
	Loading Status = 2

	// Shipped means the container left the origin country. Terminal except
	// for nothing: even administrative deletion is blocked.
	Shipped Status = 3
)

func statusNames() map[Status]string {
	return map[Status]string{
		Open:    "Open",
		Loading: "Loading",
		Shipped: "Shipped",
	}
}

// Validate checks that the status is one of the defined codes.
func (s Status) Validate() error {
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid container status", int(s)))
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

// IsShipped reports whether the container has left the origin country.
func (s Status) IsShipped() bool {
	return s >= Shipped
}
