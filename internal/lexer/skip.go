package lexer

import (
	"calscan/internal/diag"
	"calscan/internal/trace"
)

// skip consumes all trivia before the next significant token and reports
// each skipped region to the sink.
//
// Brace comments exist only inside code: while the current context is a
// BEGIN/END or CASE block, '{' opens a comment running to the next '}'.
// Everywhere else braces are structural delimiters and fall through to the
// operator scanner.
func (lx *Lexer) skip() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == ' ' || b == '\t' || b == '\r':
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			lx.emitSkip(trace.SkipWhitespace, lx.cursor.SpanFrom(start))

		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.emitSkip(trace.SkipNewline, lx.cursor.SpanFrom(start))

		case b == '/':
			if !lx.skipSlashComment(start) {
				return
			}

		case b == '{' && lx.tracker.InCode():
			lx.skipBraceComment(start)

		default:
			return
		}
	}
}

// skipSlashComment handles '//' and '/*'. Returns false when the slash is an
// operator, leaving the cursor untouched.
func (lx *Lexer) skipSlashComment(start Mark) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false
	}
	switch b1 {
	case '/':
		// line comment runs to end of line, exclusive
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' && lx.cursor.Peek() != '\r' {
			lx.cursor.Bump()
		}
		lx.emitSkip(trace.SkipLineComment, lx.cursor.SpanFrom(start))
		return true

	case '*':
		// C-style comment: non-nesting, admits any content including other
		// comment markers; runs to '*/' or to end of input
		lx.cursor.Bump()
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.report(diag.LexUnterminatedComment, sp, "unterminated comment")
		}
		lx.emitSkip(trace.SkipCComment, sp)
		return true

	default:
		return false
	}
}

// skipBraceComment consumes a '{...}' comment inside code. Non-nesting.
func (lx *Lexer) skipBraceComment(start Mark) {
	lx.cursor.Bump() // '{'
	closed := false
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '}' {
			closed = true
			break
		}
	}
	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.report(diag.LexUnterminatedComment, sp, "unterminated brace comment")
	}
	lx.emitSkip(trace.SkipBraceComment, sp)
}
