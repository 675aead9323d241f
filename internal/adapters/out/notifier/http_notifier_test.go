package notifier_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/adapters/out/notifier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

func TestHTTPNotifier_NotifyStatusChanged(t *testing.T) {
	t.Run("posts the status change", func(t *testing.T) {
		var received map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/notifications/order-status", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		orderID, err := kernel.NewID(42)
		require.NoError(t, err)

		n := notifier.NewHTTPNotifier(server.URL)
		require.NoError(t, n.NotifyStatusChanged(t.Context(), orderID, order.Quoted))

		assert.Equal(t, float64(42), received["orderId"])
		assert.Equal(t, float64(order.Quoted.Int()), received["status"])
		assert.Equal(t, "Quoted", received["label"])
		assert.NotEmpty(t, received["messageId"])
	})

	t.Run("gateway failure surfaces as upstream unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		orderID, err := kernel.NewID(42)
		require.NoError(t, err)

		n := notifier.NewHTTPNotifier(server.URL)
		err = n.NotifyStatusChanged(t.Context(), orderID, order.Quoted)
		require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
	})
}
