// Package trace is the optional instrumentation channel of the tokenizer.
//
// Every token emission, every skipped region, every context push and pop,
// every flag change, and every speculative compound-token failure is reported
// to an injected Sink, in strict chronological order, which lets an engineer
// replay exactly why each disambiguation decision was made.
//
// The scanner is constructed with at most one Sink. With no sink configured
// the scanner performs no event bookkeeping whatsoever: emission sites are
// nil-guarded field reads, so the no-trace path is indistinguishable from a
// build without instrumentation.
//
// Implementations:
//
//   - FuncSink: adapts a plain callback (the construction-time trace option)
//   - RingSink: bounded circular buffer with Snapshot/Dump
//   - StreamSink: NDJSON lines to a writer
//   - MultiSink: fan-out
package trace
