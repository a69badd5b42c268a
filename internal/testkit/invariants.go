package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"calscan/internal/source"
	"calscan/internal/token"
)

// CheckTokenInvariants runs the structural invariants every tokenize run must
// satisfy, malformed input included:
// 1) the array ends with exactly one EOF token, and EOF appears nowhere else
// 2) every span lies within the file's content bounds
// 3) spans are non-overlapping and ordered by start offset
// 4) positions are 1-based and non-decreasing in line order
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token array")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	last := tokens[len(tokens)-1]
	if last.Kind != token.EOF {
		return fmt.Errorf("last token is %v, not EOF", last.Kind)
	}
	if !last.Span.Empty() || last.Span.Start != lenContent {
		return fmt.Errorf("EOF span must be empty at end of input: %v", last.Span)
	}
	if last.Text != "" {
		return fmt.Errorf("EOF token carries text %q", last.Text)
	}

	var prevEnd uint32
	var prevLine uint32
	for i, tok := range tokens[:len(tokens)-1] {
		if tok.Kind == token.EOF {
			return fmt.Errorf("EOF at index %d before the end", i)
		}
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span points at file %d, want %d", i, sp.File, sf.ID)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d has an empty span: %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d overlaps its predecessor: start %d < previous end %d", i, sp.Start, prevEnd)
		}
		if string(sf.Content[sp.Start:sp.End]) != tok.Text {
			return fmt.Errorf("token %d text %q does not match its span", i, tok.Text)
		}
		if tok.Pos.Line == 0 || tok.Pos.Col == 0 {
			return fmt.Errorf("token %d has a zero position: %+v", i, tok.Pos)
		}
		if tok.Pos.Line < prevLine {
			return fmt.Errorf("token %d goes back a line: %d after %d", i, tok.Pos.Line, prevLine)
		}
		prevEnd = sp.End
		prevLine = tok.Pos.Line
	}
	return nil
}
