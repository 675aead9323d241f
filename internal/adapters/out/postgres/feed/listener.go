// Package feed streams row-change notifications out of Postgres using
// LISTEN/NOTIFY. A trigger on each watched table emits a JSON payload with
// the row id and the changed column values on the channel named after the
// table; the listener turns those payloads into ports.ChangeEvent values for
// the reconciler.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"fulfillment/internal/core/ports"
)

const (
	channelPrefix        = "row_changes_"
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
)

// payload is the JSON body a change trigger attaches to its notification.
type payload struct {
	RowID  int64             `json:"row_id"`
	Fields map[string]string `json:"fields"`
}

// PqChangeFeed implements ports.ChangeFeed over a lib/pq listener connection.
type PqChangeFeed struct {
	dsn    string
	logger *slog.Logger
}

// NewPqChangeFeed creates a change feed for the given connection string.
func NewPqChangeFeed(dsn string, logger *slog.Logger) *PqChangeFeed {
	return &PqChangeFeed{
		dsn:    dsn,
		logger: logger.With(slog.String("component", "changeFeed")),
	}
}

// Events subscribes to the channels of the given tables and streams their
// notifications until ctx is cancelled. The returned channel is closed when
// the subscription ends; malformed payloads are logged and skipped.
func (f *PqChangeFeed) Events(ctx context.Context, tables ...string) (<-chan ports.ChangeEvent, error) {
	listener := pq.NewListener(f.dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				f.logger.Warn("listener connection event",
					slog.Int("event", int(event)), slog.Any("error", err))
			}
		})

	for _, table := range tables {
		if err := listener.Listen(channelPrefix + table); err != nil {
			_ = listener.Close()
			return nil, fmt.Errorf("listen on %s%s: %w", channelPrefix, table, err)
		}
	}

	events := make(chan ports.ChangeEvent)
	go f.pump(ctx, listener, events)
	return events, nil
}

func (f *PqChangeFeed) pump(ctx context.Context, listener *pq.Listener, events chan<- ports.ChangeEvent) {
	defer close(events)
	defer func() {
		if err := listener.Close(); err != nil {
			f.logger.Warn("closing listener", slog.Any("error", err))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case notification, ok := <-listener.Notify:
			if !ok {
				return
			}
			if notification == nil {
				// nil marks a reconnect; rows changed while the
				// connection was down were missed.
				f.logger.Warn("listener reconnected, notifications may have been missed")
				continue
			}

			event, err := f.decode(notification)
			if err != nil {
				f.logger.Warn("malformed change notification",
					slog.String("channel", notification.Channel), slog.Any("error", err))
				continue
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (f *PqChangeFeed) decode(notification *pq.Notification) (ports.ChangeEvent, error) {
	var body payload
	if err := json.Unmarshal([]byte(notification.Extra), &body); err != nil {
		return ports.ChangeEvent{}, err
	}
	if body.RowID <= 0 {
		return ports.ChangeEvent{}, fmt.Errorf("row id %d is not positive", body.RowID)
	}

	table := notification.Channel
	if len(table) > len(channelPrefix) && table[:len(channelPrefix)] == channelPrefix {
		table = table[len(channelPrefix):]
	}

	return ports.ChangeEvent{
		Table:  table,
		RowID:  body.RowID,
		Fields: body.Fields,
	}, nil
}
