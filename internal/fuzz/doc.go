// Package fuzztests houses Go fuzz harnesses that push arbitrary bytes
// through the tokenizer. The goal is to smoke test robustness: no panics, no
// runaway allocation, and the structural token invariants holding on any
// input, well-formed or not.
package fuzztests
