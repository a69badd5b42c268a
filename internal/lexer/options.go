package lexer

import (
	"calscan/internal/diag"
	"calscan/internal/lang"
	"calscan/internal/source"
	"calscan/internal/trace"
)

// Reporter receives lexical diagnostics. The lexer only calls it with
// parameters; formatting is the outer layer's concern.
type Reporter interface {
	Report(code diag.Code, span source.Span, msg string)
}

// Options configures a Lexer. The zero value is valid: no reporter, no trace
// sink, built-in language tables. Omitting the sink, passing a nil sink, and
// passing no options at all are behaviorally and performance identical.
type Options struct {
	Reporter Reporter     // may be nil: diagnostics are dropped, lexing continues
	Sink     trace.Sink   // may be nil: no instrumentation bookkeeping happens
	Tables   *lang.Tables // may be nil: lang.Default()
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}
