package diag

import (
	"calscan/internal/source"
)

// BagReporter adapts a Bag to the thin reporter interface the lexer accepts,
// so the lexer package does not depend on Bag directly.
type BagReporter struct {
	Bag *Bag
}

// Report records one diagnostic. All lexical reports are warnings: the token
// stream is still complete and well-formed, the caller decides how to surface
// the concern.
func (r *BagReporter) Report(code Code, primary source.Span, msg string) {
	r.Bag.Add(Diagnostic{
		Severity: SevWarning,
		Code:     code,
		Message:  msg,
		Primary:  primary,
	})
}
