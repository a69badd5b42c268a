package token

import (
	"calscan/internal/source"
)

// Token represents a single source token with its location.
//
// Tokens are contiguous and non-overlapping in offset order except across
// whitespace and comment gaps. The final token of every run is EOF with an
// empty span positioned at the end of the input.
type Token struct {
	Kind Kind
	Text string
	Span source.Span
	Pos  source.LineCol // 1-based line/column of Span.Start
}

// IsLiteral reports whether the token is a numeric, date, time, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Integer, Decimal, Date, Time, DateTime, String:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a keyword of any class.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwObject && t.Kind <= KwTemporary
}

// IsSectionKeyword reports whether the token introduces a named section.
func (t Token) IsSectionKeyword() bool {
	return t.Kind.IsSectionKeyword()
}

// IsSectionKeyword reports whether the kind introduces a named section.
func (k Kind) IsSectionKeyword() bool {
	return k >= KwObjectProperties && k <= KwEvents
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Assign && t.Kind <= Question
}

// IsIdent reports whether the token is a plain or quoted identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == QuotedIdent }
