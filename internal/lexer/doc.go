// Package lexer turns object text into tokens. The language is context
// sensitive: a brace opens a comment inside code blocks and a delimiter
// everywhere else, and words like BEGIN or CODE are keywords only where the
// surrounding structure says so. The scanner therefore consults a state
// tracker on every structural byte and every keyword-shaped word, and the
// tracker's verdict decides the token kind.
//
// A Lexer instance is single use at a time: Tokenize resets all state on
// entry and rejects overlapping calls on the same instance with
// ErrReentrantTokenize. Distinct instances share nothing and may run
// concurrently.
package lexer
