// Package token defines the lexical token kinds for C/SIDE object text.
// Invariants:
//   - Token.Text is the exact source slice, including embedded line endings
//     inside multi-line string literals.
//   - Token.Span matches Text exactly (Start..End, byte offsets).
//   - Keywords are case-insensitive; Text preserves the source spelling.
//   - Comments never appear in the token stream; they are skips reported to
//     the trace sink only.
//   - Whether a keyword-shaped word is a keyword or an identifier is decided
//     by the context tracker, not by this package.
package token
