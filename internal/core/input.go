package core

// EventKind classifies an input event, abstracted from the frontend's raw events.
// The game only reacts to close requests and pointer-button releases.
type EventKind int

const (
	EventOther           EventKind = iota
	EventCloseRequested            // window close icon, q, Ctrl+C, Esc
	EventPointerReleased           // mouse button released (or space on terminals)
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventOther:
		return "Other"
	case EventCloseRequested:
		return "CloseRequested"
	case EventPointerReleased:
		return "PointerReleased"
	default:
		return "Unknown"
	}
}

// Event is a single input event delivered by a frontend's event source.
type Event struct {
	Kind EventKind
}

// CloseRequested returns a close-request event.
func CloseRequested() Event {
	return Event{Kind: EventCloseRequested}
}

// PointerReleased returns a pointer-button-released event.
func PointerReleased() Event {
	return Event{Kind: EventPointerReleased}
}

// EventQueue buffers events between a frontend's input callbacks and the next
// PollEvents call. It is not safe for concurrent use.
type EventQueue struct {
	pending []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(ev Event) {
	q.pending = append(q.pending, ev)
}

// Len returns the number of buffered events.
func (q *EventQueue) Len() int {
	return len(q.pending)
}

// Drain returns all buffered events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// PollEvents drains the queue. It never fails, which makes EventQueue usable as an
// event source for frontends that receive input through callbacks.
func (q *EventQueue) PollEvents() ([]Event, error) {
	return q.Drain(), nil
}
