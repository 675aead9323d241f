package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/services/quotation"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// QuoteOrderCommandHandler computes and applies a quote. Tariffs are
// re-fetched from the store on every quote rather than cached: the record is
// shared and concurrently patched by staff and the rate-refresh job.
//
// The exchange rate applied is FxRateUSD, the source-currency price of one
// settlement unit.
type QuoteOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	tariffStore ports.TariffStore
	engine      quotation.Engine
	notifier    ports.PayerNotifier
	logger      *slog.Logger
}

// NewQuoteOrderCommandHandler creates a handler for quoting orders.
func NewQuoteOrderCommandHandler(uowFactory OrderUoWFactory, tariffStore ports.TariffStore,
	engine quotation.Engine, notifier ports.PayerNotifier, logger *slog.Logger) QuoteOrderCommandHandler {
	return QuoteOrderCommandHandler{
		uowFactory:  uowFactory,
		tariffStore: tariffStore,
		engine:      engine,
		notifier:    notifier,
		logger:      logger.With(slog.String("component", "quote_order")),
	}
}

// Handle quotes the order and returns the data-quality warnings collected
// along the way. The payer is notified after the commit; a notification
// failure is logged and never fails the quote.
func (h *QuoteOrderCommandHandler) Handle(ctx context.Context, cmd QuoteOrderCommand) ([]errs.DataQualityWarning, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.tariffStore.Get(ctx)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	result, err := h.engine.Quote(quotation.Input{
		OrderID:      aggregate.ID(),
		Quantity:     aggregate.Quantity(),
		FreightMode:  aggregate.FreightMode(),
		UnitPrice:    cmd.UnitPrice(),
		FreightPrice: cmd.FreightPrice(),
		Dimensions:   cmd.Dims(),
	}, quotation.Tariffs{
		AirRatePerKg:         current.AirRatePerKg,
		SeaRatePerCubicMeter: current.SeaRatePerCubicMeter,
		MarginPercent:        current.MarginPercent,
		FxRate:               current.FxRateUSD,
	})
	if err != nil {
		return nil, err
	}

	if err = aggregate.ApplyQuote(cmd.UnitPrice(), cmd.FreightPrice(), cmd.Dims(), result.FinalCharge); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.NotifyStatusChanged(ctx, aggregate.ID(), aggregate.Status()); err != nil {
		h.logger.Error("payer notification failed",
			slog.Int64("orderID", aggregate.ID().Int64()),
			slog.Any("error", err))
	}

	return result.Warnings, nil
}
