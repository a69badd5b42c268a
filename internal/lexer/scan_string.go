package lexer

import (
	"calscan/internal/diag"
	"calscan/internal/token"
)

// scanString scans a single-quoted text literal. A doubled quote '' inside
// the literal is an escaped quote, and the literal may span lines: the raw
// bytes between the quotes, line endings included, are kept verbatim.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '\'' {
			continue
		}
		if lx.cursor.Eat('\'') {
			continue // escaped quote, keep scanning
		}
		sp := lx.cursor.SpanFrom(start)
		lx.curSpan = sp
		lx.tracker.Plain()
		return lx.makeToken(token.String, sp)
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
	lx.curSpan = sp
	lx.tracker.Plain()
	return lx.makeToken(token.Unknown, sp)
}
