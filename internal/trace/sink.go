package trace

// Sink receives trace events in strict chronological order.
//
// A sink is selected once at construction of a scanner. The scanner holds it
// in a plain field and guards every emission site with a nil check on that
// field, so running without a sink does no event construction at all.
//
// A sink callback must not re-invoke tokenization on the scanner instance
// that is calling it; doing so fails with a reentrancy error. Tokenizing on a
// different instance from inside a callback is a supported pattern.
type Sink interface {
	Emit(ev Event)
}

// FuncSink adapts a plain callback to the Sink interface.
type FuncSink func(ev Event)

// Emit calls the wrapped function.
func (f FuncSink) Emit(ev Event) { f(ev) }
