package quotation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/quotation"
	"fulfillment/internal/pkg/errs"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(s)
	require.NoError(t, err)
	return m
}

func dims(t *testing.T, h, w, l, kg string) kernel.Dimensions {
	t.Helper()
	d, err := kernel.NewDimensions(dec(t, h), dec(t, w), dec(t, l), dec(t, kg))
	require.NoError(t, err)
	return d
}

func newEngine(t *testing.T) quotation.Engine {
	t.Helper()
	e, err := quotation.NewEngine(dec(t, "7.0"))
	require.NoError(t, err)
	return e
}

func orderID(t *testing.T) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(42)
	require.NoError(t, err)
	return id
}

func TestEngine_Quote_Air(t *testing.T) {
	// unit price 10 CNY, freight 5 CNY, qty 3, margin 25%, fx 7.25,
	// air 2kg at 8.50/kg:
	//   base source  = 35
	//   base settle  ~ 4.8276
	//   margined     ~ 6.0345
	//   surcharge    = 17.00
	engine := newEngine(t)

	input := quotation.Input{
		OrderID:      orderID(t),
		Quantity:     3,
		FreightMode:  kernel.FreightModeAir,
		UnitPrice:    money(t, "10"),
		FreightPrice: money(t, "5"),
		Dimensions:   dims(t, "0", "0", "0", "2"),
	}
	tariffs := quotation.Tariffs{
		AirRatePerKg:  dec(t, "8.50"),
		MarginPercent: dec(t, "25"),
		FxRate:        dec(t, "7.25"),
	}

	result, err := engine.Quote(input, tariffs)

	require.NoError(t, err)
	assert.Equal(t, "23.03", result.FinalCharge.StringFixed())
	assert.Empty(t, result.Warnings)
}

func TestEngine_Quote_Maritime(t *testing.T) {
	// 50x40x30 cm is 0.06 cubic meters; at 180/m3 the surcharge is 10.80
	// on top of the margined base.
	engine := newEngine(t)

	input := quotation.Input{
		OrderID:      orderID(t),
		Quantity:     1,
		FreightMode:  kernel.FreightModeMaritime,
		UnitPrice:    money(t, "72.50"),
		FreightPrice: money(t, "0"),
		Dimensions:   dims(t, "50", "40", "30", "0"),
	}
	tariffs := quotation.Tariffs{
		SeaRatePerCubicMeter: dec(t, "180"),
		MarginPercent:        dec(t, "0"),
		FxRate:               dec(t, "7.25"),
	}

	result, err := engine.Quote(input, tariffs)

	require.NoError(t, err)
	// 72.50 / 7.25 = 10, plus 10.80 surcharge
	assert.Equal(t, "20.80", result.FinalCharge.StringFixed())
	assert.Empty(t, result.Warnings)
}

func TestEngine_Quote_Determinism(t *testing.T) {
	engine := newEngine(t)

	input := quotation.Input{
		OrderID:      orderID(t),
		Quantity:     7,
		FreightMode:  kernel.FreightModeAir,
		UnitPrice:    money(t, "13.37"),
		FreightPrice: money(t, "4.20"),
		Dimensions:   dims(t, "10", "10", "10", "1.5"),
	}
	tariffs := quotation.Tariffs{
		AirRatePerKg:  dec(t, "8.50"),
		MarginPercent: dec(t, "25"),
		FxRate:        dec(t, "7.25"),
	}

	first, err := engine.Quote(input, tariffs)
	require.NoError(t, err)
	second, err := engine.Quote(input, tariffs)
	require.NoError(t, err)

	assert.True(t, first.FinalCharge.Equal(second.FinalCharge),
		"identical inputs must yield an identical charge")
}

func TestEngine_Quote_DataQuality(t *testing.T) {
	engine := newEngine(t)
	tariffs := quotation.Tariffs{
		AirRatePerKg:         dec(t, "8.50"),
		SeaRatePerCubicMeter: dec(t, "180"),
		MarginPercent:        dec(t, "25"),
		FxRate:               dec(t, "7.25"),
	}

	t.Run("zero weight on air yields zero surcharge and a warning", func(t *testing.T) {
		input := quotation.Input{
			OrderID:      orderID(t),
			Quantity:     2,
			FreightMode:  kernel.FreightModeAir,
			UnitPrice:    money(t, "10"),
			FreightPrice: money(t, "0"),
			Dimensions:   kernel.ZeroDimensions(),
		}

		result, err := engine.Quote(input, tariffs)

		require.NoError(t, err)
		// 20 / 7.25 * 1.25, no surcharge
		assert.Equal(t, "3.45", result.FinalCharge.StringFixed())
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0].String(), "zero weight")
	})

	t.Run("zero dimensions on maritime yields zero surcharge and a warning", func(t *testing.T) {
		input := quotation.Input{
			OrderID:      orderID(t),
			Quantity:     1,
			FreightMode:  kernel.FreightModeMaritime,
			UnitPrice:    money(t, "7.25"),
			FreightPrice: money(t, "0"),
			Dimensions:   dims(t, "50", "0", "30", "0"),
		}

		result, err := engine.Quote(input, tariffs)

		require.NoError(t, err)
		assert.Equal(t, "1.25", result.FinalCharge.StringFixed())
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0].String(), "zero volume")
	})
}

func TestEngine_Quote_FxFallback(t *testing.T) {
	engine := newEngine(t)

	input := quotation.Input{
		OrderID:      orderID(t),
		Quantity:     1,
		FreightMode:  kernel.FreightModeAir,
		UnitPrice:    money(t, "14"),
		FreightPrice: money(t, "0"),
		Dimensions:   dims(t, "0", "0", "0", "1"),
	}
	tariffs := quotation.Tariffs{
		AirRatePerKg:  dec(t, "2"),
		MarginPercent: dec(t, "0"),
		FxRate:        decimal.Zero,
	}

	result, err := engine.Quote(input, tariffs)

	require.NoError(t, err)
	// default 7.0 applied: 14 / 7 + 2
	assert.Equal(t, "4.00", result.FinalCharge.StringFixed())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].String(), "default")
}

func TestEngine_Quote_InvalidInput(t *testing.T) {
	engine := newEngine(t)
	tariffs := quotation.Tariffs{FxRate: dec(t, "7.25")}

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		input := quotation.Input{
			OrderID:      orderID(t),
			Quantity:     0,
			FreightMode:  kernel.FreightModeAir,
			UnitPrice:    money(t, "10"),
			FreightPrice: money(t, "0"),
			Dimensions:   kernel.ZeroDimensions(),
		}

		_, err := engine.Quote(input, tariffs)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed money is rejected", func(t *testing.T) {
		input := quotation.Input{
			OrderID:      orderID(t),
			Quantity:     1,
			FreightMode:  kernel.FreightModeAir,
			FreightPrice: money(t, "0"),
			Dimensions:   kernel.ZeroDimensions(),
		}

		_, err := engine.Quote(input, tariffs)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewEngine(t *testing.T) {
	t.Run("should reject non-positive default rate", func(t *testing.T) {
		_, err := quotation.NewEngine(decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
