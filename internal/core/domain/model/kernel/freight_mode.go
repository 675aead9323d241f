package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// FreightMode determines the freight-cost formula and box/container
// eligibility rules for an order.
type FreightMode string

const (
	// FreightModeAir is charged by weight and may bypass container
	// consolidation (a box of air orders can be sent directly).
	FreightModeAir FreightMode = "air"

	// FreightModeMaritime is charged by volume and must travel inside
	// a shipping container.
	FreightModeMaritime FreightMode = "maritime"
)

// NewFreightMode parses a freight mode from its string form.
func NewFreightMode(value string) (FreightMode, error) {
	mode := FreightMode(value)
	if err := mode.Validate(); err != nil {
		return "", err
	}
	return mode, nil
}

// Validate checks that the mode is one of the known values.
func (m FreightMode) Validate() error {
	if m != FreightModeAir && m != FreightModeMaritime {
		return errs.NewValueIsInvalidErrorWithCause("freightMode",
			fmt.Errorf("%q is not a valid freight mode", string(m)))
	}
	return nil
}

// String implements fmt.Stringer.
func (m FreightMode) String() string {
	return string(m)
}
