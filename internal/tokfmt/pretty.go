package tokfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"calscan/internal/diag"
	"calscan/internal/source"
	"calscan/internal/token"
)

var (
	keywordColor  = color.New(color.FgYellow, color.Bold)
	sectionColor  = color.New(color.FgMagenta, color.Bold)
	literalColor  = color.New(color.FgGreen)
	identColor    = color.New(color.FgCyan)
	operatorColor = color.New(color.FgWhite)
	unknownColor  = color.New(color.FgRed, color.Bold)

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

func colorFor(tok token.Token) *color.Color {
	switch {
	case tok.Kind == token.Unknown:
		return unknownColor
	case tok.IsSectionKeyword() || tok.Kind == token.KwObject:
		return sectionColor
	case tok.IsKeyword():
		return keywordColor
	case tok.IsLiteral():
		return literalColor
	case tok.IsIdent():
		return identColor
	default:
		return operatorColor
	}
}

// PrettyOptions controls the human-readable listing.
type PrettyOptions struct {
	Color        bool
	MaxTextWidth int // truncation width for token text; <= 0 means 40
}

// FormatTokensPretty writes one line per token plus a trailing summary box.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fileSet *source.FileSet, bag *diag.Bag, opts PrettyOptions) error {
	maxText := opts.MaxTextWidth
	if maxText <= 0 {
		maxText = 40
	}

	counts := map[string]int{}
	for i, tok := range tokens {
		start, end := fileSet.Resolve(tok.Span)
		kindName := tok.Kind.String()
		counts[classOf(tok)]++

		if opts.Color {
			kindName = colorFor(tok).Sprint(kindName)
		}
		// pad by display width, not bytes: kind names are plain ASCII but the
		// color escape codes would defeat %-15s
		pad := 18 - runewidth.StringWidth(tok.Kind.String())
		if pad < 1 {
			pad = 1
		}
		if _, err := fmt.Fprintf(w, "%4d: %s%*s", i, kindName, pad, ""); err != nil {
			return err
		}
		if tok.Text != "" {
			if _, err := fmt.Fprintf(w, "%q ", runewidth.Truncate(tok.Text, maxText, "…")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%d tokens: %d keywords, %d identifiers, %d literals, %d punctuation, %d unknown",
		len(tokens), counts["keyword"], counts["ident"], counts["literal"], counts["punct"], counts["unknown"])
	if bag != nil && bag.Len() > 0 {
		line := fmt.Sprintf("%d diagnostic(s)", bag.Len())
		if opts.Color {
			line = warnStyle.Render(line)
		}
		summary += "\n" + line
	}
	if opts.Color {
		summary = summaryStyle.Render(summary)
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}

func classOf(tok token.Token) string {
	switch {
	case tok.Kind == token.Unknown:
		return "unknown"
	case tok.Kind == token.EOF:
		return "eof"
	case tok.IsKeyword():
		return "keyword"
	case tok.IsIdent():
		return "ident"
	case tok.IsLiteral():
		return "literal"
	default:
		return "punct"
	}
}

// FormatDiagnosticsPretty writes the collected diagnostics, one per line.
func FormatDiagnosticsPretty(w io.Writer, bag *diag.Bag, fileSet *source.FileSet, useColor bool) error {
	for _, d := range bag.Items() {
		start, _ := fileSet.Resolve(d.Primary)
		id := d.Code.ID()
		if useColor {
			id = warnStyle.Render(id)
		}
		if _, err := fmt.Fprintf(w, "%s %s at %d:%d: %s\n",
			id, d.Severity, start.Line, start.Col, d.Message); err != nil {
			return err
		}
	}
	return nil
}
