package lexer

import (
	"errors"

	"calscan/internal/diag"
	"calscan/internal/lang"
	"calscan/internal/source"
	"calscan/internal/state"
	"calscan/internal/token"
	"calscan/internal/trace"
)

// ErrReentrantTokenize is returned when Tokenize is re-invoked on the same
// instance while a run is already in flight, e.g. from inside its own trace
// callback. Tokenizing on a different instance from a callback is supported.
var ErrReentrantTokenize = errors.New("lexer: tokenize re-entered on the same instance (reentrancy violation)")

// Lexer scans one file into a token array. One instance owns its state
// exclusively for the duration of one Tokenize call; distinct instances
// share nothing.
type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	tables  *lang.Tables
	tracker *state.Tracker
	sink    trace.Sink

	running    bool
	seq        uint64
	tokenIndex int
	skips      int
	curSpan    source.Span
}

// Result is the outcome of one run: the EOF-terminated token array, the
// final state snapshot (open depths, sticky underflow flag), and the number
// of skipped regions (whitespace runs, newline runs, comments).
type Result struct {
	Tokens []token.Token
	Final  state.Snapshot
	Skips  int
}

// New creates a Lexer for the given file.
func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		tables: opts.Tables,
		sink:   opts.Sink,
	}
	if lx.tables == nil {
		lx.tables = lang.Default()
	}
	var obs state.Observer
	if lx.sink != nil {
		obs = sinkObserver{lx}
	}
	lx.tracker = state.NewTracker(lx.tables, obs)
	return lx
}

// Tokenize scans the whole input and returns the token array, always
// terminated by exactly one EOF token. It resets all state on entry, so
// separate invocations on the same instance are independent. The only
// possible error is ErrReentrantTokenize.
func (lx *Lexer) Tokenize() (*Result, error) {
	if lx.running {
		return nil, ErrReentrantTokenize
	}
	lx.running = true
	defer func() { lx.running = false }()

	lx.cursor = NewCursor(lx.file)
	lx.tracker.Reset()
	lx.seq = 0
	lx.tokenIndex = 0
	lx.skips = 0

	var tokens []token.Token
	for {
		lx.skip()
		if lx.cursor.EOF() {
			eof := token.Token{
				Kind: token.EOF,
				Text: "",
				Span: lx.cursor.SpanFrom(lx.cursor.Mark()),
				Pos:  lx.file.LineColAt(lx.cursor.Off),
			}
			lx.emitToken(eof)
			tokens = append(tokens, eof)
			break
		}
		tok := lx.next()
		lx.emitToken(tok)
		tokens = append(tokens, tok)
		lx.tokenIndex++
	}

	final := lx.tracker.Snapshot()
	if final.Underflow {
		lx.report(diag.LexContextUnderflow, tokens[len(tokens)-1].Span,
			"more closes than opens: context stack underflow")
	}
	if final.BraceDepth != 0 || final.BracketDepth != 0 || openBlocks(final.Contexts) {
		lx.report(diag.LexUnbalancedDelimiters, tokens[len(tokens)-1].Span,
			"input ends with open delimiters or blocks")
	}
	return &Result{Tokens: tokens, Final: final, Skips: lx.skips}, nil
}

// openBlocks reports whether any block context is still open at end of input.
// Object level persists for the whole file and is not a defect.
func openBlocks(contexts []state.Context) bool {
	for _, c := range contexts {
		switch c {
		case state.ContextSectionLevel, state.ContextCodeBlock, state.ContextCaseBlock:
			return true
		}
	}
	return false
}

// next scans one token. The input is not at EOF and not at trivia.
func (lx *Lexer) next() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '\'':
		return lx.scanString()
	case ch == '"':
		return lx.scanQuotedIdent()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// makeToken builds a token over sp and records sp as the span of the lexical
// event being processed (used by the observer bridge).
func (lx *Lexer) makeToken(kind token.Kind, sp source.Span) token.Token {
	lx.curSpan = sp
	return token.Token{
		Kind: kind,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Span: sp,
		Pos:  lx.file.LineColAt(sp.Start),
	}
}

func (lx *Lexer) emit(ev trace.Event) {
	lx.seq++
	ev.Seq = lx.seq
	lx.sink.Emit(ev)
}

func (lx *Lexer) emitToken(tok token.Token) {
	if lx.sink == nil {
		return
	}
	lx.emit(trace.Event{
		Kind:  trace.EventToken,
		Span:  tok.Span,
		Token: tok.Kind.String(),
		Text:  tok.Text,
	})
}

func (lx *Lexer) emitSkip(class trace.SkipClass, sp source.Span) {
	lx.skips++
	if lx.sink == nil {
		return
	}
	lx.emit(trace.Event{Kind: trace.EventSkip, Skip: class, Span: sp})
}

func (lx *Lexer) emitSpeculativeFail(sp source.Span, first, sep, expected, actual, reason string) {
	if lx.sink == nil {
		return
	}
	lx.emit(trace.Event{
		Kind:     trace.EventSpeculativeFail,
		Span:     sp,
		First:    first,
		Sep:      sep,
		Expected: expected,
		Actual:   actual,
		Reason:   reason,
	})
}

// sinkObserver forwards tracker transitions and flag changes to the sink.
// It is only installed when a sink is present, so the tracker skips all
// record building otherwise.
type sinkObserver struct {
	lx *Lexer
}

func (o sinkObserver) Transition(t state.Transition) {
	kind := trace.EventContextPush
	if t.Kind == state.TransitionPop {
		kind = trace.EventContextPop
	}
	o.lx.emit(trace.Event{
		Kind:  kind,
		Span:  o.lx.curSpan,
		From:  t.From.String(),
		To:    t.To.String(),
		Depth: t.Depth,
	})
}

func (o sinkObserver) FlagChange(f state.FlagChange) {
	o.lx.emit(trace.Event{
		Kind: trace.EventFlagChange,
		Span: o.lx.curSpan,
		Flag: f.Field,
		Old:  f.Old,
		New:  f.New,
	})
}
