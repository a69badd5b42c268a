package diag

import (
	"calscan/internal/source"
)

// Note attaches secondary information to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reported data-quality concern. The tokenizer never aborts
// on one: malformed input becomes Unknown tokens plus diagnostics for the
// caller to surface.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
