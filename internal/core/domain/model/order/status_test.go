package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("all defined codes are valid", func(t *testing.T) {
		for code := -2; code <= 13; code++ {
			require.NoError(t, order.Status(code).Validate(), "code %d", code)
		}
	})

	t.Run("codes outside the defined range are invalid", func(t *testing.T) {
		require.Error(t, order.Status(-3).Validate())
		require.Error(t, order.Status(14).Validate())
		require.Error(t, order.Status(100).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Received", order.Received.String())
	assert.Equal(t, "Quoted", order.Quoted.String())
	assert.Equal(t, "RejectedAfterQuote", order.RejectedAfterQuote.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.RejectedFinal.IsTerminal())

	// RejectedAfterQuote is payable again, so it is not terminal.
	assert.False(t, order.RejectedAfterQuote.IsTerminal())
	assert.False(t, order.Received.IsTerminal())
	assert.False(t, order.Sent.IsTerminal())
}

func TestStatus_IsShippedOrLater(t *testing.T) {
	assert.False(t, order.Consolidated.IsShippedOrLater())
	assert.True(t, order.Sent.IsShippedOrLater())
	assert.True(t, order.InCustoms.IsShippedOrLater())
	assert.True(t, order.Delivered.IsShippedOrLater())
}

func TestStatus_InLoadingContainer(t *testing.T) {
	// 7 and 8 are stored as distinct codes but read as one logical state.
	assert.True(t, order.PackedInContainer.InLoadingContainer())
	assert.True(t, order.Consolidated.InLoadingContainer())
	assert.False(t, order.Packed.InLoadingContainer())
	assert.False(t, order.Sent.InLoadingContainer())
}

func TestStatus_IsQuotedOrLater(t *testing.T) {
	assert.False(t, order.Received.IsQuotedOrLater())
	assert.False(t, order.UnderReview.IsQuotedOrLater())
	assert.True(t, order.Quoted.IsQuotedOrLater())
	assert.True(t, order.RejectedAfterQuote.IsQuotedOrLater())
	assert.True(t, order.Delivered.IsQuotedOrLater())
}
