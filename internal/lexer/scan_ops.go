package lexer

import (
	"fmt"

	"calscan/internal/diag"
	"calscan/internal/token"
)

// two-byte operators, longest match first
var twoByteOps = []struct {
	a, b byte
	kind token.Kind
}{
	{':', '=', token.Assign},
	{'+', '=', token.PlusAssign},
	{'-', '=', token.MinusAssign},
	{'*', '=', token.StarAssign},
	{'/', '=', token.SlashAssign},
	{'<', '=', token.LtEq},
	{'>', '=', token.GtEq},
	{'<', '>', token.Neq},
	{':', ':', token.ColonColon},
	{'.', '.', token.DotDot},
}

var oneByteOps = map[byte]token.Kind{
	'=': token.Eq,
	'<': token.Lt,
	'>': token.Gt,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'.': token.Dot,
	',': token.Comma,
	':': token.Colon,
	';': token.Semicolon,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	'@': token.At,
	'&': token.Amp,
	'^': token.Caret,
	'%': token.Percent,
	'?': token.Question,
}

// scanOperatorOrPunct scans an operator or a punctuation byte. Structural
// bytes feed the tracker after the token span is fixed, so any context
// transition carries this token's span.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	for _, op := range twoByteOps {
		if lx.try2(op.a, op.b) {
			sp := lx.cursor.SpanFrom(start)
			lx.curSpan = sp
			lx.tracker.Plain()
			return lx.makeToken(op.kind, sp)
		}
	}

	b := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.curSpan = sp

	kind, ok := oneByteOps[b]
	if !ok {
		lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character 0x%02X", b))
		lx.tracker.Plain()
		return lx.makeToken(token.Unknown, sp)
	}

	switch kind {
	case token.LBrace:
		lx.tracker.OpenBrace()
	case token.RBrace:
		lx.tracker.CloseBrace()
	case token.LBracket:
		lx.tracker.OpenBracket()
	case token.RBracket:
		lx.tracker.CloseBracket()
	case token.Eq:
		lx.tracker.Equals()
	case token.Semicolon:
		lx.tracker.Semicolon()
	default:
		lx.tracker.Plain()
	}
	return lx.makeToken(kind, sp)
}
