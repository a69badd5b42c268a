package tokfmt

import (
	"encoding/json"
	"io"

	"calscan/internal/diag"
	"calscan/internal/source"
	"calscan/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind string    `json:"kind"`
	Text string    `json:"text,omitempty"`
	Line uint32    `json:"line"`
	Col  uint32    `json:"col"`
	Span [2]uint32 `json:"span"`
}

// DiagnosticOutput is the JSON shape of one diagnostic.
type DiagnosticOutput struct {
	ID       string `json:"id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     uint32 `json:"line"`
	Col      uint32 `json:"col"`
}

// Output is the full JSON document for one tokenize run.
type Output struct {
	Path        string             `json:"path"`
	Tokens      []TokenOutput      `json:"tokens"`
	Diagnostics []DiagnosticOutput `json:"diagnostics,omitempty"`
	Underflow   bool               `json:"underflow,omitempty"`
}

// FormatTokensJSON writes the run as one indented JSON document.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fileSet *source.FileSet, file *source.File, bag *diag.Bag, underflow bool) error {
	out := Output{
		Path:      file.Path,
		Tokens:    make([]TokenOutput, 0, len(tokens)),
		Underflow: underflow,
	}
	for _, tok := range tokens {
		out.Tokens = append(out.Tokens, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: tok.Pos.Line,
			Col:  tok.Pos.Col,
			Span: [2]uint32{tok.Span.Start, tok.Span.End},
		})
	}
	if bag != nil {
		for _, d := range bag.Items() {
			start, _ := fileSet.Resolve(d.Primary)
			out.Diagnostics = append(out.Diagnostics, DiagnosticOutput{
				ID:       d.Code.ID(),
				Severity: d.Severity.String(),
				Message:  d.Message,
				Line:     start.Line,
				Col:      start.Col,
			})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
