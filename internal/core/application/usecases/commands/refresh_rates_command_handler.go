package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/tariff"
	"fulfillment/internal/core/ports"
)

// RateWriter persists a fetched rate into the pricing configuration. The
// manual refresh patches the store immediately; the polling job plugs in a
// coalescing writer that debounces rapid successive fetches instead.
type RateWriter interface {
	WriteRate(ctx context.Context, kind ports.RateKind, patch tariff.Patch) error
}

// RefreshRatesCommandHandler fetches the current rate from the provider and
// hands it to the rate writer. Fiat quotes update the USD exchange rate,
// stablecoin quotes the CNY one.
type RefreshRatesCommandHandler struct {
	tariffStore ports.TariffStore
	provider    ports.RateProvider
	writer      RateWriter
	logger      *slog.Logger
}

// NewRefreshRatesCommandHandler creates the handler.
func NewRefreshRatesCommandHandler(tariffStore ports.TariffStore, provider ports.RateProvider,
	writer RateWriter, logger *slog.Logger) RefreshRatesCommandHandler {
	return RefreshRatesCommandHandler{
		tariffStore: tariffStore,
		provider:    provider,
		writer:      writer,
		logger:      logger.With(slog.String("component", "refresh_rates")),
	}
}

// Handle fetches and persists the rate. A non-forced refresh is skipped
// silently when the market's auto-update toggle is off.
func (h *RefreshRatesCommandHandler) Handle(ctx context.Context, cmd RefreshRatesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Force() {
		current, err := h.tariffStore.Get(ctx)
		if err != nil {
			return err
		}
		if !autoUpdateEnabled(current, cmd.Kind()) {
			h.logger.Debug("auto-update disabled, refresh skipped",
				slog.String("kind", string(cmd.Kind())))
			return nil
		}
	}

	quote, err := h.provider.Fetch(ctx, cmd.Kind(), cmd.Side())
	if err != nil {
		return err
	}

	var patch tariff.Patch
	rate := quote.Rate
	switch cmd.Kind() {
	case ports.RateKindFiat:
		patch.FxRateUSD = &rate
	case ports.RateKindStablecoin:
		patch.FxRateCNY = &rate
	}

	if err = h.writer.WriteRate(ctx, cmd.Kind(), patch); err != nil {
		return err
	}

	h.logger.Info("rate refreshed",
		slog.String("kind", string(cmd.Kind())),
		slog.String("rate", quote.Rate.String()),
		slog.String("source", quote.Source))
	return nil
}

func autoUpdateEnabled(current tariff.Tariff, kind ports.RateKind) bool {
	switch kind {
	case ports.RateKindFiat:
		return current.AutoUpdateFiat
	case ports.RateKindStablecoin:
		return current.AutoUpdateStablecoin
	}
	return false
}
