// Package jobs provides the scheduled background tasks: the periodic
// exchange-rate refresh and the debounced writer that batches its updates
// into the tariff store.
package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/ports"
)

// Every 30 minutes.
const rateRefreshSchedule = "0 0,30 * * * *"

// RateRefreshJob polls the exchange-rate provider on a schedule. Each tick
// refreshes the fiat sell rate and the stablecoin buy rate; the auto-update
// toggles on the tariff record decide whether either write actually happens.
type RateRefreshJob struct {
	handler commands.RefreshRatesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRateRefreshJob creates the polling job.
func NewRateRefreshJob(handler commands.RefreshRatesCommandHandler, logger *slog.Logger) *RateRefreshJob {
	return &RateRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rate_refresh_job"),
	}
}

// Start begins the polling schedule.
func (j *RateRefreshJob) Start() error {
	_, err := j.cron.AddFunc(rateRefreshSchedule, j.tick)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rate refresh job started (running every 30 minutes)")
	return nil
}

// Stop stops the polling schedule.
func (j *RateRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rate refresh job stopped")
}

func (j *RateRefreshJob) tick() {
	ctx := context.Background()

	refreshes := []struct {
		kind ports.RateKind
		side ports.RateSide
	}{
		{ports.RateKindFiat, ports.RateSideSell},
		{ports.RateKindStablecoin, ports.RateSideBuy},
	}

	for _, refresh := range refreshes {
		cmd, err := commands.NewRefreshRatesCommand(refresh.kind, refresh.side, false)
		if err != nil {
			j.logger.ErrorContext(ctx, "Rate refresh command rejected", "error", err)
			continue
		}

		if err = j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Rate refresh failed",
				"kind", string(refresh.kind), "error", err)
		}
	}
}
