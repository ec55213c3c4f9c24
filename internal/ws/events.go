package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// Event types pushed to connected clients.
const (
	EventGraphChanged  = "graph.changed"
	EventLayoutTick    = "layout.tick"
	EventLayoutStopped = "layout.stopped"
	EventAlgorithmDone = "algorithm.done"
)

// Event is the structured message sent to WebSocket clients.
type Event struct {
	Type string          `json:"type"`
	ID   uint64          `json:"id"`
	Data json.RawMessage `json:"data"`
	Time time.Time       `json:"time"`
}

// EventSequence hands out monotonically increasing event IDs so clients can
// detect dropped messages.
type EventSequence struct {
	counter atomic.Uint64
}

// Next returns the next sequence number.
func (es *EventSequence) Next() uint64 {
	return es.counter.Add(1)
}
