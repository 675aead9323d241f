package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// PayerNotifier alerts the payer about an order-state transition. It is
// called synchronously after a successful commit; a notification failure is
// logged and never fails the command that triggered it.
type PayerNotifier interface {
	NotifyStatusChanged(ctx context.Context, orderID kernel.ID, status order.Status) error
}
