package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a command to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type quoteRequest struct {
		orderID int64
		margin  int
		guard   guard.ConstructorGuard
	}

	var errQuoteRequestNotConstructed = errors.New("quoteRequest must be created via newQuoteRequest")

	newQuoteRequest := func(orderID int64, margin int) (quoteRequest, error) {
		if orderID <= 0 {
			return quoteRequest{}, errors.New("orderID must be positive")
		}
		if margin < 0 {
			return quoteRequest{}, errors.New("margin cannot be negative")
		}
		return quoteRequest{
			orderID: orderID,
			margin:  margin,
			guard:   guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		req, err := newQuoteRequest(42, 25)

		// Then
		require.NoError(t, err)
		require.NoError(t, req.guard.Validate(errQuoteRequestNotConstructed))
		assert.Equal(t, int64(42), req.orderID)
		assert.Equal(t, 25, req.margin)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var req quoteRequest // zero value

		// When
		err := req.guard.Validate(errQuoteRequestNotConstructed)

		// Then
		require.Error(t, err)
		assert.Equal(t, errQuoteRequestNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newQuoteRequest(0, 25)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderID must be positive")

		_, err = newQuoteRequest(42, -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "margin cannot be negative")
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

func TestConstructorGuardCopySemantics(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		gCopy := g // pass by value

		// Then
		require.NoError(t, g.Validate(testError))
		require.NoError(t, gCopy.Validate(testError))
	})
}
