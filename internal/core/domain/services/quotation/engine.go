// Package quotation implements the pricing engine that turns an order's
// source-currency prices and physical data into a settlement-currency final
// charge.
package quotation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Input is everything a single quote needs from the order side. Prices are
// in the source currency and arrive with the quote request; they are not read
// from the stored order, which may still hold stale values from a previous
// quote.
type Input struct {
	OrderID      kernel.ID
	Quantity     int
	FreightMode  kernel.FreightMode
	UnitPrice    kernel.Money
	FreightPrice kernel.Money
	Dimensions   kernel.Dimensions
}

// Validate checks the input values were properly constructed.
func (in Input) Validate() error {
	err := errors.Join(
		in.OrderID.Validate(),
		in.FreightMode.Validate(),
		in.UnitPrice.Validate(),
		in.FreightPrice.Validate(),
		in.Dimensions.Validate(),
	)
	if in.Quantity <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not positive", in.Quantity)))
	}
	return err
}

// Tariffs is the slice of the shared pricing configuration a single quote
// needs. The caller picks the exchange rate matching the order's settlement
// currency.
type Tariffs struct {
	AirRatePerKg         decimal.Decimal
	SeaRatePerCubicMeter decimal.Decimal
	MarginPercent        decimal.Decimal
	FxRate               decimal.Decimal
}

// Result carries the computed charge together with any data-quality warnings
// observed along the way. Warnings never block the quote; the caller decides
// whether to surface or act on them.
type Result struct {
	FinalCharge kernel.Money
	Warnings    []errs.DataQualityWarning
}

// Engine is a pure domain service computing final charges:
//
//	base_source  = unitPrice * quantity + freightPrice
//	base_settle  = base_source / fxRate
//	margined     = base_settle * (1 + marginPercent/100)
//	surcharge    = weightKg * airRatePerKg            (air)
//	             | volume_m3 * seaRatePerCubicMeter   (maritime)
//	finalCharge  = margined + surcharge
//
// The computation is deterministic and side-effect free: identical inputs
// always produce an identical charge. All arithmetic stays in full decimal
// precision; rounding happens only when the charge is displayed.
//
// Zero weight on an air shipment and zero dimensions on a maritime one
// produce a zero surcharge plus a data-quality warning, never an error.
type Engine struct {
	defaultFxRate decimal.Decimal
}

// NewEngine creates an Engine with the exchange rate used when the
// configured one is missing or non-positive. The default itself must be
// positive.
func NewEngine(defaultFxRate decimal.Decimal) (Engine, error) {
	if !defaultFxRate.IsPositive() {
		return Engine{}, errs.NewValueIsInvalidErrorWithCause("defaultFxRate",
			fmt.Errorf("%s is not positive", defaultFxRate.String()))
	}
	return Engine{defaultFxRate: defaultFxRate}, nil
}

// Quote computes the final charge for the given input under the given
// tariffs. Nothing is mutated; applying the charge to the order is the
// lifecycle manager's job.
func (e Engine) Quote(in Input, tariffs Tariffs) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	var warnings []errs.DataQualityWarning

	fxRate := tariffs.FxRate
	if !fxRate.IsPositive() {
		fxRate = e.defaultFxRate
		warnings = append(warnings, errs.NewDataQualityWarning("tariff", "fxRate",
			fmt.Sprintf("configured rate %s is not positive, default %s applied",
				tariffs.FxRate.String(), fxRate.String())))
	}

	baseSource := in.UnitPrice.Amount().
		Mul(decimal.NewFromInt(int64(in.Quantity))).
		Add(in.FreightPrice.Amount())
	baseSettle := baseSource.Div(fxRate)
	margined := baseSettle.Mul(one.Add(tariffs.MarginPercent.Div(hundred)))

	surcharge, surchargeWarnings := e.freightSurcharge(in, tariffs)
	warnings = append(warnings, surchargeWarnings...)

	finalCharge, err := kernel.MoneyFromDecimal(margined.Add(surcharge))
	if err != nil {
		return Result{}, err
	}

	return Result{FinalCharge: finalCharge, Warnings: warnings}, nil
}

func (e Engine) freightSurcharge(in Input, tariffs Tariffs) (decimal.Decimal, []errs.DataQualityWarning) {
	switch in.FreightMode {
	case kernel.FreightModeAir:
		if !in.Dimensions.HasWeight() {
			return decimal.Zero, []errs.DataQualityWarning{
				errs.NewDataQualityWarning("order", in.OrderID, "air shipment has zero weight, freight surcharge is zero"),
			}
		}
		return in.Dimensions.WeightKg().Mul(tariffs.AirRatePerKg), nil

	case kernel.FreightModeMaritime:
		if !in.Dimensions.HasVolume() {
			return decimal.Zero, []errs.DataQualityWarning{
				errs.NewDataQualityWarning("order", in.OrderID, "maritime shipment has zero volume, freight surcharge is zero"),
			}
		}
		return in.Dimensions.VolumeCubicMeters().Mul(tariffs.SeaRatePerCubicMeter), nil
	}

	return decimal.Zero, nil
}
