package wheelie

import "fmt"

// ClickEvent is a single simulated slot click, replayed against the server
// by a ClickSink.
type ClickEvent struct {
	ContainerID int
	SlotID      int
	Button      int
	Action      SlotActionType
}

// String returns a compact description used in debug output.
func (e ClickEvent) String() string {
	return fmt.Sprintf("click{container=%d slot=%d button=%d %s}",
		e.ContainerID, e.SlotID, e.Button, e.Action)
}

// ClickSink performs a click against the authoritative inventory.
type ClickSink interface {
	Click(ev ClickEvent)
}

// ClickSinkFunc adapts a function to ClickSink.
type ClickSinkFunc func(ev ClickEvent)

// Click calls f(ev).
func (f ClickSinkFunc) Click(ev ClickEvent) { f(ev) }

type queuedClick struct {
	event      ClickEvent
	onComplete func()
}

// ClickQueue replays click events in order, at most one per Tick, so the
// server can update its state between clicks. The host owns the queue and
// calls Tick once per game tick. A queue may be shared by several screens.
//
// There is no internal locking; the queue belongs to the input thread.
type ClickQueue struct {
	sink    ClickSink
	pending []queuedClick
}

// NewClickQueue creates an empty queue replaying into sink.
func NewClickQueue(sink ClickSink) *ClickQueue {
	return &ClickQueue{sink: sink}
}

// Enqueue appends ev. onComplete, if non-nil, runs right after the event has
// been handed to the sink.
func (q *ClickQueue) Enqueue(ev ClickEvent, onComplete func()) {
	q.pending = append(q.pending, queuedClick{event: ev, onComplete: onComplete})
}

// Tick replays the oldest pending event. Returns false if the queue was empty.
func (q *ClickQueue) Tick() bool {
	if len(q.pending) == 0 {
		return false
	}
	next := q.pending[0]
	copy(q.pending, q.pending[1:])
	q.pending[len(q.pending)-1] = queuedClick{}
	q.pending = q.pending[:len(q.pending)-1]

	if q.sink != nil {
		q.sink.Click(next.event)
	}
	if next.onComplete != nil {
		next.onComplete()
	}
	return true
}

// Len returns the number of events waiting to be replayed.
func (q *ClickQueue) Len() int {
	return len(q.pending)
}

// Pending returns a copy of the waiting events in replay order.
func (q *ClickQueue) Pending() []ClickEvent {
	out := make([]ClickEvent, len(q.pending))
	for i := range q.pending {
		out[i] = q.pending[i].event
	}
	return out
}

// Clear drops all pending events without replaying them. Continuations are
// not run.
func (q *ClickQueue) Clear() {
	for i := range q.pending {
		q.pending[i] = queuedClick{}
	}
	q.pending = q.pending[:0]
}
