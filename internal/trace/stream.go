package trace

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// StreamSink writes each event to an output writer as one NDJSON line.
type StreamSink struct {
	mu sync.Mutex
	w  *bufio.Writer
}

// NewStreamSink creates a StreamSink over w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: bufio.NewWriter(w)}
}

// Emit writes the event immediately.
func (s *StreamSink) Emit(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// write errors surface on Flush
	_ = writeNDJSON(s.w, ev)
}

// Flush forces buffered events out.
func (s *StreamSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}

func writeNDJSON(w io.Writer, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// MultiSink fans events out to several sinks in order.
type MultiSink []Sink

// Emit forwards the event to every sink.
func (m MultiSink) Emit(ev Event) {
	for _, s := range m {
		s.Emit(ev)
	}
}
