package ports

import "context"

// ChangeEvent is one server-side change notification from the persistence
// layer, keyed by table and row id. Fields carries the column values of the
// changed row as the store serialized them.
type ChangeEvent struct {
	Table  string
	RowID  int64
	Fields map[string]string
}

// ChangeFeed streams change notifications for the given tables. Events stops
// when ctx is cancelled or the underlying connection is lost; the consumer
// re-subscribes and re-reads baselines on reconnect.
type ChangeFeed interface {
	Events(ctx context.Context, tables ...string) (<-chan ChangeEvent, error)
}
