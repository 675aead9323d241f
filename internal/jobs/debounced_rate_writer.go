package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/tariff"
	"fulfillment/internal/core/ports"
)

// DefaultWriteDelay is how long a pending rate write waits for a newer
// observation before it is flushed to the store.
const DefaultWriteDelay = 1200 * time.Millisecond

const flushTimeout = 5 * time.Second

var errWriterClosed = errors.New("rate writer is closed")

// DebouncedRateWriter batches rapid successions of rate updates into single
// tariff patches. Writes are keyed by rate kind: a newer observation for the
// same kind supersedes the pending one, so only the latest value reaches the
// store. Different kinds never delay each other.
type DebouncedRateWriter struct {
	store  ports.TariffStore
	logger *slog.Logger
	delay  time.Duration

	mu      sync.Mutex
	pending map[ports.RateKind]tariff.Patch
	timers  map[ports.RateKind]*time.Timer
	closed  bool
}

// NewDebouncedRateWriter creates a writer flushing after the given delay.
func NewDebouncedRateWriter(store ports.TariffStore, logger *slog.Logger, delay time.Duration) *DebouncedRateWriter {
	return &DebouncedRateWriter{
		store:   store,
		logger:  logger.With("component", "rate_writer"),
		delay:   delay,
		pending: make(map[ports.RateKind]tariff.Patch),
		timers:  make(map[ports.RateKind]*time.Timer),
	}
}

// WriteRate schedules a patch for the given kind. A patch already pending
// for that kind is discarded in favor of this one and the delay restarts.
func (w *DebouncedRateWriter) WriteRate(_ context.Context, kind ports.RateKind, patch tariff.Patch) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return errWriterClosed
	}

	w.pending[kind] = patch
	if timer, ok := w.timers[kind]; ok {
		timer.Stop()
	}
	w.timers[kind] = time.AfterFunc(w.delay, func() { w.flush(kind) })

	return nil
}

// Close stops the timers and flushes whatever is still pending.
func (w *DebouncedRateWriter) Close() {
	w.mu.Lock()
	w.closed = true
	kinds := make([]ports.RateKind, 0, len(w.timers))
	for kind, timer := range w.timers {
		timer.Stop()
		kinds = append(kinds, kind)
	}
	w.mu.Unlock()

	for _, kind := range kinds {
		w.flush(kind)
	}
}

func (w *DebouncedRateWriter) flush(kind ports.RateKind) {
	w.mu.Lock()
	patch, ok := w.pending[kind]
	delete(w.pending, kind)
	delete(w.timers, kind)
	w.mu.Unlock()

	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if _, err := w.store.Patch(ctx, patch); err != nil {
		w.logger.ErrorContext(ctx, "Flushing rate write failed",
			"kind", string(kind), "error", err)
	}
}
