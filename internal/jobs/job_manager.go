package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs and the debounced rate writer.
type JobManager struct {
	rateRefreshJob *RateRefreshJob
	rateWriter     *DebouncedRateWriter
}

// NewJobManager wires the rate refresh job to its handler and writer.
func NewJobManager(
	refreshRatesHandler commands.RefreshRatesCommandHandler,
	rateWriter *DebouncedRateWriter,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		rateRefreshJob: NewRateRefreshJob(refreshRatesHandler, logger),
		rateWriter:     rateWriter,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.rateRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start rate refresh job: %w", err)
	}

	return nil
}

// StopAll stops the jobs and flushes pending rate writes.
func (jm *JobManager) StopAll() {
	jm.rateRefreshJob.Stop()
	jm.rateWriter.Close()
}
