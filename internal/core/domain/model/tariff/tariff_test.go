package tariff_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/tariff"
	"fulfillment/internal/pkg/errs"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func baseTariff(t *testing.T) tariff.Tariff {
	t.Helper()
	return tariff.Tariff{
		AirRatePerKg:         dec(t, "8.50"),
		SeaRatePerCubicMeter: dec(t, "180"),
		MarginPercent:        dec(t, "25"),
		FxRateUSD:            dec(t, "7.25"),
		FxRateCNY:            dec(t, "1"),
		Version:              3,
	}
}

func TestTariff_Apply(t *testing.T) {
	t.Run("patch overwrites only the named fields", func(t *testing.T) {
		current := baseTariff(t)
		margin := dec(t, "30")

		updated, err := current.Apply(tariff.Patch{MarginPercent: &margin})

		require.NoError(t, err)
		assert.True(t, updated.MarginPercent.Equal(margin))
		assert.True(t, updated.AirRatePerKg.Equal(current.AirRatePerKg))
		assert.True(t, updated.FxRateUSD.Equal(current.FxRateUSD))
		assert.Equal(t, current.AutoUpdateFiat, updated.AutoUpdateFiat)
	})

	t.Run("applied patch bumps the version", func(t *testing.T) {
		current := baseTariff(t)
		enabled := true

		updated, err := current.Apply(tariff.Patch{AutoUpdateFiat: &enabled})

		require.NoError(t, err)
		assert.Equal(t, current.Version+1, updated.Version)
		assert.True(t, updated.AutoUpdateFiat)
		assert.False(t, updated.UpdatedAt.IsZero())
	})

	t.Run("negative freight rate is rejected without mutation", func(t *testing.T) {
		current := baseTariff(t)
		negative := dec(t, "-1")

		updated, err := current.Apply(tariff.Patch{AirRatePerKg: &negative})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, updated.AirRatePerKg.Equal(current.AirRatePerKg))
		assert.Equal(t, current.Version, updated.Version)
	})

	t.Run("zero exchange rate is rejected", func(t *testing.T) {
		current := baseTariff(t)
		zero := decimal.Zero

		_, err := current.Apply(tariff.Patch{FxRateUSD: &zero})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, tariff.Patch{}.IsEmpty())

	margin := decimal.NewFromInt(20)
	assert.False(t, tariff.Patch{MarginPercent: &margin}.IsEmpty())
}
