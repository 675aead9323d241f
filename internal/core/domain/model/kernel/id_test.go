package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should create valid id from positive value", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
		assert.False(t, id.IsZero())
	})

	t.Run("should fail with zero value", func(t *testing.T) {
		_, err := kernel.NewID(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with negative value", func(t *testing.T) {
		_, err := kernel.NewID(-7)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-7 is not positive")
	})
}

func TestID_IsZero(t *testing.T) {
	var id kernel.ID
	assert.True(t, id.IsZero())
	require.Error(t, id.Validate())
}
