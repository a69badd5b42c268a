package trace

import (
	"io"
	"sync"
)

// RingSink keeps the last N events in memory (circular buffer). Useful for
// replaying the tail of a run that went wrong without paying for unbounded
// storage.
type RingSink struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
	head     int  // next write position
	full     bool // has wrapped around
}

// NewRingSink creates a RingSink with the given capacity.
func NewRingSink(capacity int) *RingSink {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingSink{
		events:   make([]Event, capacity),
		capacity: capacity,
	}
}

// Emit adds an event to the ring buffer.
func (s *RingSink) Emit(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[s.head] = ev
	s.head = (s.head + 1) % s.capacity
	if s.head == 0 {
		s.full = true
	}
}

// Snapshot returns a copy of all stored events in chronological order.
func (s *RingSink) Snapshot() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.full {
		result := make([]Event, s.head)
		copy(result, s.events[:s.head])
		return result
	}
	result := make([]Event, s.capacity)
	copy(result, s.events[s.head:])
	copy(result[s.capacity-s.head:], s.events[:s.head])
	return result
}

// Dump writes all stored events to w as NDJSON.
func (s *RingSink) Dump(w io.Writer) error {
	for _, ev := range s.Snapshot() {
		if err := writeNDJSON(w, ev); err != nil {
			return err
		}
	}
	return nil
}
