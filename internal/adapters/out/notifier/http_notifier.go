// Package notifier delivers order status-change notifications to the payer
// messaging gateway.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

const gatewayName = "payer-gateway"

// HTTPNotifier implements ports.PayerNotifier over the gateway's REST API.
// Callers treat delivery as best-effort: the command that triggered the
// notification has already committed.
type HTTPNotifier struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPNotifier constructs a notifier client.
func NewHTTPNotifier(baseURL string) *HTTPNotifier {
	return &HTTPNotifier{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type notification struct {
	// MessageID deduplicates retried deliveries on the gateway side.
	MessageID string `json:"messageId"`
	OrderID   int64  `json:"orderId"`
	Status    int    `json:"status"`
	Label     string `json:"label"`
}

// NotifyStatusChanged posts one status-change notification.
func (n *HTTPNotifier) NotifyStatusChanged(ctx context.Context, orderID kernel.ID, status order.Status) error {
	body, err := json.Marshal(notification{
		MessageID: uuid.NewString(),
		OrderID:   orderID.Int64(),
		Status:    status.Int(),
		Label:     status.String(),
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/notifications/order-status", n.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errs.NewUpstreamUnavailableError(gatewayName, false, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return errs.NewUpstreamUnavailableError(gatewayName, false,
			fmt.Errorf("gateway returned status %d", resp.StatusCode))
	}

	return nil
}
