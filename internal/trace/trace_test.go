package trace_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"calscan/internal/trace"
)

func TestFuncSink(t *testing.T) {
	var got []trace.Event
	var s trace.Sink = trace.FuncSink(func(ev trace.Event) { got = append(got, ev) })

	s.Emit(trace.Event{Seq: 1, Kind: trace.EventToken, Token: "BEGIN"})
	s.Emit(trace.Event{Seq: 2, Kind: trace.EventSkip, Skip: trace.SkipWhitespace})

	if len(got) != 2 || got[0].Token != "BEGIN" || got[1].Skip != trace.SkipWhitespace {
		t.Errorf("unexpected events: %+v", got)
	}
}

func TestRingSinkWrapsAround(t *testing.T) {
	s := trace.NewRingSink(3)
	for i := uint64(1); i <= 5; i++ {
		s.Emit(trace.Event{Seq: i, Kind: trace.EventToken})
	}

	snap := s.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot length = %d, want 3", len(snap))
	}
	for i, want := range []uint64{3, 4, 5} {
		if snap[i].Seq != want {
			t.Errorf("snapshot[%d].Seq = %d, want %d", i, snap[i].Seq, want)
		}
	}
}

func TestRingSinkPartial(t *testing.T) {
	s := trace.NewRingSink(8)
	s.Emit(trace.Event{Seq: 1})
	s.Emit(trace.Event{Seq: 2})

	snap := s.Snapshot()
	if len(snap) != 2 || snap[0].Seq != 1 || snap[1].Seq != 2 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestStreamSinkNDJSON(t *testing.T) {
	var buf bytes.Buffer
	s := trace.NewStreamSink(&buf)
	s.Emit(trace.Event{Seq: 1, Kind: trace.EventContextPush, From: "normal", To: "object", Depth: 2})
	s.Emit(trace.Event{Seq: 2, Kind: trace.EventFlagChange, Flag: "braceDepth", Old: "0", New: "1"})
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	var ev trace.Event
	if err := json.Unmarshal([]byte(lines[0]), &ev); err != nil {
		t.Fatalf("line 0 is not valid JSON: %v", err)
	}
	if ev.From != "normal" || ev.To != "object" || ev.Depth != 2 {
		t.Errorf("round trip lost fields: %+v", ev)
	}
}

func TestMultiSink(t *testing.T) {
	ring := trace.NewRingSink(4)
	var n int
	fn := trace.FuncSink(func(trace.Event) { n++ })

	m := trace.MultiSink{ring, fn}
	m.Emit(trace.Event{Seq: 1})
	m.Emit(trace.Event{Seq: 2})

	if n != 2 {
		t.Errorf("func sink saw %d events, want 2", n)
	}
	if len(ring.Snapshot()) != 2 {
		t.Errorf("ring sink stored %d events, want 2", len(ring.Snapshot()))
	}
}

func TestRingSinkDump(t *testing.T) {
	s := trace.NewRingSink(4)
	s.Emit(trace.Event{Seq: 1, Kind: trace.EventToken, Token: "OBJECT"})
	var buf bytes.Buffer
	if err := s.Dump(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"OBJECT"`) {
		t.Errorf("dump missing token name: %s", buf.String())
	}
}
