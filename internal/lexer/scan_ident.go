package lexer

import (
	"strings"

	"calscan/internal/diag"
	"calscan/internal/source"
	"calscan/internal/state"
	"calscan/internal/token"
)

var sectionKinds = map[token.Kind]state.SectionKind{
	token.KwObjectProperties: state.SectionObjectProperties,
	token.KwProperties:       state.SectionProperties,
	token.KwFields:           state.SectionFields,
	token.KwKeys:             state.SectionKeys,
	token.KwFieldGroups:      state.SectionFieldGroups,
	token.KwCode:             state.SectionCode,
	token.KwControls:         state.SectionControls,
	token.KwElements:         state.SectionElements,
	token.KwDataItems:        state.SectionDataItems,
	token.KwLabels:           state.SectionLabels,
	token.KwActions:          state.SectionActions,
	token.KwMenuNodes:        state.SectionMenuNodes,
	token.KwRequestForm:      state.SectionRequestForm,
	token.KwSections:         state.SectionSections,
	token.KwEvents:           state.SectionEvents,
}

// scanIdentOrKeyword scans a word, attempts speculative compound tokens, and
// lets the tracker decide whether a keyword-shaped word is live here.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.scanWord()
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if comp, ok := lx.tables.CompoundFor(text); ok && lx.cursor.Peek() == comp.Sep[0] {
		if lx.tryCompound(start, text, comp.Sep, comp.Second) {
			return lx.classifyWord(comp.KindOf(), lx.cursor.SpanFrom(start))
		}
	}
	return lx.classifyWord(token.Unknown, sp)
}

// tryCompound attempts first+sep+second. On mismatch or empty continuation
// the cursor rewinds to just after the first word and the failure is
// reported to the sink only, never as an error.
func (lx *Lexer) tryCompound(start Mark, first, sep, expected string) bool {
	rewind := lx.cursor.Mark()
	lx.cursor.Bump() // separator

	secondStart := lx.cursor.Mark()
	lx.scanWord()
	second := string(lx.file.Content[uint32(secondStart):lx.cursor.Off])

	switch {
	case second == "":
		lx.cursor.Reset(rewind)
		lx.emitSpeculativeFail(lx.cursor.SpanFrom(start), first, sep, expected, "", "empty continuation")
		return false
	case !strings.EqualFold(second, expected):
		lx.cursor.Reset(rewind)
		lx.emitSpeculativeFail(lx.cursor.SpanFrom(start), first, sep, expected, second, "second word mismatch")
		return false
	default:
		return true
	}
}

// scanWord consumes an identifier-shaped run of bytes.
func (lx *Lexer) scanWord() {
	if !isIdentStartByte(lx.cursor.Peek()) {
		return
	}
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// classifyWord resolves the final kind of a word via the tracker. hint is
// the compound kind when a speculative match succeeded, token.Unknown
// otherwise (plain words look their kind up in the keyword table).
func (lx *Lexer) classifyWord(hint token.Kind, sp source.Span) token.Token {
	lx.curSpan = sp
	text := string(lx.file.Content[sp.Start:sp.End])

	kind := hint
	if kind == token.Unknown {
		var isKw bool
		kind, isKw = token.LookupKeyword(text)
		if !isKw {
			lx.tracker.Identifier(text)
			return lx.makeToken(token.Ident, sp)
		}
	}

	var asKeyword bool
	switch kind {
	case token.KwBegin:
		asKeyword = lx.tracker.Begin()
	case token.KwEnd:
		asKeyword = lx.tracker.End()
	case token.KwCase:
		asKeyword = lx.tracker.Case()
	case token.KwObject:
		asKeyword = lx.tracker.ObjectKeyword(lx.tokenIndex)
	default:
		if sk, isSection := sectionKinds[kind]; isSection {
			asKeyword = lx.tracker.SectionKeyword(sk)
		} else {
			asKeyword = lx.tracker.Keyword()
		}
	}
	if !asKeyword {
		lx.tracker.Identifier(text)
		return lx.makeToken(token.Ident, sp)
	}
	return lx.makeToken(kind, sp)
}

// scanQuotedIdent scans a double-quoted identifier such as "No.". The quotes
// cannot span lines; a missing closing quote yields an Unknown token.
func (lx *Lexer) scanQuotedIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			lx.curSpan = sp
			tok := lx.makeToken(token.QuotedIdent, sp)
			lx.tracker.Identifier(tok.Text)
			return tok
		}
		if b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedQuotedID, sp, "unterminated quoted identifier")
	lx.curSpan = sp
	lx.tracker.Plain()
	return lx.makeToken(token.Unknown, sp)
}
