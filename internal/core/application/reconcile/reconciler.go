// Package reconcile merges asynchronous change notifications from the
// persistence layer with locally-held optimistic state.
//
// Every staff session and the rate-polling job write to the same rows, and
// each write echoes back through the change feed. Applying an echo of a
// value a session just wrote would revert newer local edits in a loop, so
// the reconciler keeps a last-known-applied baseline per row and forwards
// only the fields that actually differ from it, advancing the baseline
// afterwards.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"fulfillment/internal/core/ports"
)

// Subscriber receives the fields of a row that genuinely changed relative
// to the baseline. Echoed or unchanged fields are filtered out before the
// call.
type Subscriber func(table string, rowID int64, changed map[string]string)

// Reconciler applies baseline-diff echo suppression over a change feed.
type Reconciler struct {
	logger *slog.Logger

	mu        sync.Mutex
	baselines map[string]map[string]string
	subs      []Subscriber
}

// New creates a Reconciler with empty baselines.
func New(logger *slog.Logger) *Reconciler {
	return &Reconciler{
		logger:    logger.With(slog.String("component", "reconciler")),
		baselines: make(map[string]map[string]string),
	}
}

// Subscribe registers a subscriber for reconciled changes. Not safe to call
// concurrently with Run; register subscribers before starting.
func (r *Reconciler) Subscribe(sub Subscriber) {
	r.subs = append(r.subs, sub)
}

// RecordLocal advances the baseline for a row after a local optimistic
// write, so the echo of that write arriving from the feed is recognized as
// already applied and suppressed.
func (r *Reconciler) RecordLocal(table string, rowID int64, fields map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advance(table, rowID, fields)
}

// Apply diffs one feed event against the baseline, forwards the differing
// fields to the subscribers, and advances the baseline. It returns the
// fields that were applied; an empty result means the event was a pure
// echo.
func (r *Reconciler) Apply(event ports.ChangeEvent) map[string]string {
	r.mu.Lock()
	baseline := r.baselines[rowKey(event.Table, event.RowID)]
	changed := make(map[string]string)
	for field, value := range event.Fields {
		if known, ok := baseline[field]; !ok || known != value {
			changed[field] = value
		}
	}
	if len(changed) > 0 {
		r.advance(event.Table, event.RowID, changed)
	}
	r.mu.Unlock()

	if len(changed) == 0 {
		return nil
	}
	for _, sub := range r.subs {
		sub(event.Table, event.RowID, changed)
	}
	return changed
}

// Run consumes the feed until the context is cancelled or the feed closes.
// A closed feed returns an error: the caller re-subscribes and the
// baselines are rebuilt from fresh reads.
func (r *Reconciler) Run(ctx context.Context, feed ports.ChangeFeed, tables ...string) error {
	events, err := feed.Events(ctx, tables...)
	if err != nil {
		return err
	}

	r.logger.Info("reconciler started", slog.Any("tables", tables))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return fmt.Errorf("change feed closed")
			}
			if applied := r.Apply(event); len(applied) > 0 {
				r.logger.Debug("change applied",
					slog.String("table", event.Table),
					slog.Int64("rowID", event.RowID),
					slog.Int("fields", len(applied)))
			}
		}
	}
}

// advance merges fields into the row baseline. Callers hold the mutex.
func (r *Reconciler) advance(table string, rowID int64, fields map[string]string) {
	key := rowKey(table, rowID)
	baseline, ok := r.baselines[key]
	if !ok {
		baseline = make(map[string]string, len(fields))
		r.baselines[key] = baseline
	}
	for field, value := range fields {
		baseline[field] = value
	}
}

func rowKey(table string, rowID int64) string {
	return fmt.Sprintf("%s/%d", table, rowID)
}
