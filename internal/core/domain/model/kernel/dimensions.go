package kernel

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when a Dimensions value was not
// created through NewDimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

var cmPerMeter = decimal.NewFromInt(100)

// Dimensions holds the physical measurements of an order: height, width and
// length in centimeters and weight in kilograms.
//
// Zero measurements are allowed; they are a data-quality concern handled by
// the quotation engine, not a validation error. Negative measurements are
// rejected at construction.
type Dimensions struct { //nolint:recvcheck //using for validation
	heightCm decimal.Decimal
	widthCm  decimal.Decimal
	lengthCm decimal.Decimal
	weightKg decimal.Decimal
	guard    guard.ConstructorGuard
}

// NewDimensions creates a Dimensions value.
// All measurements must be non-negative; zero is permitted.
func NewDimensions(heightCm, widthCm, lengthCm, weightKg decimal.Decimal) (Dimensions, error) {
	d := Dimensions{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.set(&d.heightCm, "heightCm", heightCm),
		d.set(&d.widthCm, "widthCm", widthCm),
		d.set(&d.lengthCm, "lengthCm", lengthCm),
		d.set(&d.weightKg, "weightKg", weightKg),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// ZeroDimensions returns constructed dimensions with every measurement zero.
// Used when an order is submitted before its physical data is known.
func ZeroDimensions() Dimensions {
	d, _ := NewDimensions(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	return d
}

// Validate ensures the value was created through the constructor.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// HeightCm returns the height in centimeters.
func (d Dimensions) HeightCm() decimal.Decimal {
	return d.heightCm
}

// WidthCm returns the width in centimeters.
func (d Dimensions) WidthCm() decimal.Decimal {
	return d.widthCm
}

// LengthCm returns the length in centimeters.
func (d Dimensions) LengthCm() decimal.Decimal {
	return d.lengthCm
}

// WeightKg returns the weight in kilograms.
func (d Dimensions) WeightKg() decimal.Decimal {
	return d.weightKg
}

// VolumeCubicMeters converts the centimeter measurements into cubic meters,
// the unit maritime freight is charged in.
func (d Dimensions) VolumeCubicMeters() decimal.Decimal {
	return d.heightCm.Div(cmPerMeter).
		Mul(d.widthCm.Div(cmPerMeter)).
		Mul(d.lengthCm.Div(cmPerMeter))
}

// HasVolume reports whether every linear measurement is positive.
func (d Dimensions) HasVolume() bool {
	return d.heightCm.IsPositive() && d.widthCm.IsPositive() && d.lengthCm.IsPositive()
}

// HasWeight reports whether the weight is positive.
func (d Dimensions) HasWeight() bool {
	return d.weightKg.IsPositive()
}

func (d *Dimensions) set(field *decimal.Decimal, name string, value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%s is negative", value.String()))
	}
	*field = value
	return nil
}
