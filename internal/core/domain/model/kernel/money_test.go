package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from decimal string", func(t *testing.T) {
		m, err := kernel.NewMoney("10.50")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.Amount().Equal(decimal.RequireFromString("10.5")))
	})

	t.Run("should allow zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney("0")

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney("-1.25")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "is negative")
	})

	t.Run("should fail with malformed string", func(t *testing.T) {
		_, err := kernel.NewMoney("ten dollars")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money

		require.Error(t, m.Validate())
	})

	t.Run("constructed zero passes validation", func(t *testing.T) {
		require.NoError(t, kernel.ZeroMoney().Validate())
	})
}

func TestMoney_StringFixed(t *testing.T) {
	// Rounding happens only at display time. Full precision is preserved
	// internally so cascaded computations do not compound rounding error.
	m, err := kernel.NewMoney("23.0344827586")
	require.NoError(t, err)

	assert.Equal(t, "23.03", m.StringFixed())
	assert.Equal(t, "23.0344827586", m.String())
}

func TestMoney_Equal(t *testing.T) {
	a, _ := kernel.NewMoney("7.25")
	b, _ := kernel.NewMoney("7.250")
	c, _ := kernel.NewMoney("7.26")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
