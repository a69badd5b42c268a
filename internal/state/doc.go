// Package state implements the hierarchical context tracker that
// disambiguates the reused lexical symbols of C/SIDE object text.
//
// The same brace pair is a block delimiter or a comment depending on whether
// the scanner is inside executable code; BEGIN, END, CODE, FIELDS and friends
// are keywords or plain data depending on the surrounding structure. The
// tracker holds a non-empty context stack plus the disambiguation flags and
// exposes exactly one operation per lexical event. Each operation has an
// explicit precondition/effect contract and reports every push, pop, and flag
// change to an optional Observer, which makes the whole machine replayable
// and unit-testable without running the scanner.
//
// Structural imbalance never errors: depth counters clamp at zero and a pop
// below the base context sets a sticky underflow flag in the final snapshot.
package state
