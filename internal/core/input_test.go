package core

import "testing"

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind     EventKind
		expected string
	}{
		{EventOther, "Other"},
		{EventCloseRequested, "CloseRequested"},
		{EventPointerReleased, "PointerReleased"},
		{EventKind(42), "Unknown"},
	}

	for _, tc := range tests {
		if tc.kind.String() != tc.expected {
			t.Errorf("EventKind(%d).String() = %q, expected %q", tc.kind, tc.kind.String(), tc.expected)
		}
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue

	if evs := q.Drain(); evs != nil {
		t.Errorf("Drain() on empty queue = %v, expected nil", evs)
	}

	q.Push(PointerReleased())
	q.Push(Event{Kind: EventOther})
	q.Push(CloseRequested())

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	evs, err := q.PollEvents()
	if err != nil {
		t.Fatalf("PollEvents() error: %v", err)
	}
	expected := []EventKind{EventPointerReleased, EventOther, EventCloseRequested}
	if len(evs) != len(expected) {
		t.Fatalf("PollEvents() returned %d events, expected %d", len(evs), len(expected))
	}
	for i, k := range expected {
		if evs[i].Kind != k {
			t.Errorf("event %d = %v, expected %v", i, evs[i].Kind, k)
		}
	}

	if q.Len() != 0 {
		t.Errorf("queue should be empty after drain, Len() = %d", q.Len())
	}
}
