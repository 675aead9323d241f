// Package tariff holds the single shared pricing configuration record: the
// freight rates, margin and exchange rates the quotation engine reads, plus
// the auto-update toggles for the rate-polling job.
//
// The record is mutated with field-level PATCH semantics only. Writers send
// the fields they intend to change and nothing else, so concurrent edits to
// unrelated fields never clobber each other. Every applied patch bumps the
// version; readers re-fetch rather than trust a long-lived copy.
package tariff

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fulfillment/internal/pkg/errs"
)

// Tariff is the current pricing configuration. Rates are kept as decimals at
// full precision; rounding happens only when a quote is displayed.
type Tariff struct {
	AirRatePerKg         decimal.Decimal
	SeaRatePerCubicMeter decimal.Decimal
	MarginPercent        decimal.Decimal
	FxRateUSD            decimal.Decimal
	FxRateCNY            decimal.Decimal
	AutoUpdateFiat       bool
	AutoUpdateStablecoin bool
	Version              int64
	UpdatedAt            time.Time
}

// Patch carries the fields a writer intends to change. Nil means "leave the
// stored value alone"; a non-nil pointer overwrites that one field.
type Patch struct {
	AirRatePerKg         *decimal.Decimal
	SeaRatePerCubicMeter *decimal.Decimal
	MarginPercent        *decimal.Decimal
	FxRateUSD            *decimal.Decimal
	FxRateCNY            *decimal.Decimal
	AutoUpdateFiat       *bool
	AutoUpdateStablecoin *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.AirRatePerKg == nil &&
		p.SeaRatePerCubicMeter == nil &&
		p.MarginPercent == nil &&
		p.FxRateUSD == nil &&
		p.FxRateCNY == nil &&
		p.AutoUpdateFiat == nil &&
		p.AutoUpdateStablecoin == nil
}

// Validate rejects rates a patch must never introduce: negative freight
// rates or margins, and non-positive exchange rates.
func (p Patch) Validate() error {
	var err error
	if p.AirRatePerKg != nil && p.AirRatePerKg.IsNegative() {
		err = errors.Join(err, negativeRate("airRatePerKg", *p.AirRatePerKg))
	}
	if p.SeaRatePerCubicMeter != nil && p.SeaRatePerCubicMeter.IsNegative() {
		err = errors.Join(err, negativeRate("seaRatePerCubicMeter", *p.SeaRatePerCubicMeter))
	}
	if p.MarginPercent != nil && p.MarginPercent.IsNegative() {
		err = errors.Join(err, negativeRate("marginPercent", *p.MarginPercent))
	}
	if p.FxRateUSD != nil && !p.FxRateUSD.IsPositive() {
		err = errors.Join(err, nonPositiveRate("fxRateUSD", *p.FxRateUSD))
	}
	if p.FxRateCNY != nil && !p.FxRateCNY.IsPositive() {
		err = errors.Join(err, nonPositiveRate("fxRateCNY", *p.FxRateCNY))
	}
	return err
}

// Apply overwrites exactly the fields the patch names, bumps the version and
// stamps the update time. The receiver is returned updated; the stored row is
// replaced under the store's row lock so per-record writes stay linearized.
func (t Tariff) Apply(p Patch) (Tariff, error) {
	if err := p.Validate(); err != nil {
		return t, err
	}

	if p.AirRatePerKg != nil {
		t.AirRatePerKg = *p.AirRatePerKg
	}
	if p.SeaRatePerCubicMeter != nil {
		t.SeaRatePerCubicMeter = *p.SeaRatePerCubicMeter
	}
	if p.MarginPercent != nil {
		t.MarginPercent = *p.MarginPercent
	}
	if p.FxRateUSD != nil {
		t.FxRateUSD = *p.FxRateUSD
	}
	if p.FxRateCNY != nil {
		t.FxRateCNY = *p.FxRateCNY
	}
	if p.AutoUpdateFiat != nil {
		t.AutoUpdateFiat = *p.AutoUpdateFiat
	}
	if p.AutoUpdateStablecoin != nil {
		t.AutoUpdateStablecoin = *p.AutoUpdateStablecoin
	}

	t.Version++
	t.UpdatedAt = time.Now().UTC()
	return t, nil
}

func negativeRate(name string, v decimal.Decimal) error {
	return errs.NewValueIsInvalidErrorWithCause(name,
		fmt.Errorf("%s is negative", v.String()))
}

func nonPositiveRate(name string, v decimal.Decimal) error {
	return errs.NewValueIsInvalidErrorWithCause(name,
		fmt.Errorf("%s is not positive", v.String()))
}
