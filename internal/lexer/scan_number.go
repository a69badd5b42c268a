package lexer

import (
	"fmt"

	"calscan/internal/diag"
	"calscan/internal/token"
)

// scanNumber scans an integer, decimal, or date/time literal. A trailing D,
// T, or DT (any case) marks a date, time, or datetime; the suffix is only
// taken when no identifier byte follows it, so 123D5 stays an integer
// followed by an identifier. A '.' only starts a fraction when a digit
// follows, which keeps the range operator 1..5 intact.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	digits := int(lx.cursor.Off) - int(uint32(start))

	kind := token.Integer
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		kind = token.Decimal
	}

	if kind == token.Integer {
		switch b := lx.cursor.Peek(); b {
		case 'D', 'd':
			if b1 := lx.cursor.PeekAt(1); b1 == 'T' || b1 == 't' {
				if !isIdentContinueByte(lx.cursor.PeekAt(2)) {
					lx.cursor.Bump()
					lx.cursor.Bump()
					kind = token.DateTime
				}
			} else if !isIdentContinueByte(b1) {
				lx.cursor.Bump()
				kind = token.Date
			}
		case 'T', 't':
			if !isIdentContinueByte(lx.cursor.PeekAt(1)) {
				lx.cursor.Bump()
				kind = token.Time
			}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	switch kind {
	case token.Date, token.Time, token.DateTime:
		if !calendarWidthOK(kind, digits, lx.file.Content[uint32(start)]) {
			lx.report(diag.LexMalformedNumber, sp,
				fmt.Sprintf("%d digits cannot form a %s literal", digits, calendarName(kind)))
		}
	}
	lx.curSpan = sp
	lx.tracker.Plain()
	return lx.makeToken(kind, sp)
}

// calendarWidthOK reports whether a digit run of the given width has a
// plausible shape for the literal kind: the single digit 0 is the undefined
// value (0D, 0T, 0DT), dates are ddMMyy or ddMMyyyy, times are hhmmss with
// optional milliseconds, datetimes concatenate the two.
func calendarWidthOK(kind token.Kind, digits int, first byte) bool {
	if digits == 1 && first == '0' {
		return true
	}
	switch kind {
	case token.Date:
		return digits == 6 || digits == 8
	case token.Time:
		return digits == 6 || digits == 9
	case token.DateTime:
		return digits == 12 || digits == 14 || digits == 15 || digits == 17
	}
	return false
}

func calendarName(kind token.Kind) string {
	switch kind {
	case token.Date:
		return "date"
	case token.Time:
		return "time"
	default:
		return "datetime"
	}
}
