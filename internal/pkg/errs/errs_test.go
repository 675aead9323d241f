package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: invalid format)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")

	assert.Equal(t, "name", err.ParamName)
	assert.Equal(t, "value is required: name", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestPreconditionFailedError(t *testing.T) {
	t.Run("formats aggregate, transition and prior state", func(t *testing.T) {
		err := errs.NewPreconditionFailedError("container", 5, "send", 3)

		assert.Equal(t, "container", err.Aggregate)
		assert.Equal(t, 5, err.ID)
		assert.Equal(t, "send", err.Transition)
		assert.Equal(t, 3, err.PriorState)
		assert.Equal(t, "precondition failed: container 5 cannot send from state 3", err.Error())
		assert.Equal(t, errs.ErrPreconditionFailed, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("box contains maritime orders")
		err := errs.NewPreconditionFailedErrorWithCause("box", 7, "sendDirectly", 1, cause)

		assert.Equal(t,
			"precondition failed: box 7 cannot sendDirectly from state 1 (cause: box contains maritime orders)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestPersistenceFailedError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewPersistenceFailedError("order", 42, "update", cause)

	assert.Equal(t, "persistence failed: update on order 42 (cause: connection reset)", err.Error())
	require.ErrorIs(t, err, errs.ErrPersistenceFailed)

	err.RolledBack = true
	assert.Equal(t, "persistence failed: update on order 42, compensated (cause: connection reset)", err.Error())
}

func TestUpstreamUnavailableError(t *testing.T) {
	t.Run("without fallback", func(t *testing.T) {
		cause := errors.New("timeout")
		err := errs.NewUpstreamUnavailableError("fx-rates", false, cause)

		assert.Equal(t, "upstream unavailable: fx-rates (cause: timeout)", err.Error())
		require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})

	t.Run("with fallback", func(t *testing.T) {
		err := errs.NewUpstreamUnavailableError("fx-rates", true, nil)
		assert.Equal(t, "upstream unavailable: fx-rates, fallback applied", err.Error())
	})
}

func TestDataQualityWarning(t *testing.T) {
	w := errs.NewDataQualityWarning("order", 9, "zero weight on air shipment")
	assert.Equal(t, "data quality: order 9: zero weight on air shipment", w.String())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrPreconditionFailed)
		require.Error(t, errs.ErrPersistenceFailed)
		require.Error(t, errs.ErrUpstreamUnavailable)
	})

	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("margin", 200, 0, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	})
}
