package diag

import (
	"fmt"
)

// Code identifies a diagnostic category.
type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexUnknownChar           Code = 1001
	LexUnterminatedString    Code = 1002
	LexUnterminatedComment   Code = 1003
	LexUnterminatedQuotedID  Code = 1004
	LexMalformedNumber       Code = 1005
	LexContextUnderflow      Code = 1010
	LexUnbalancedDelimiters  Code = 1011
)

// ID returns the stable display form of the code, e.g. "LEX1002".
func (c Code) ID() string {
	switch {
	case c == UnknownCode:
		return "UNK0000"
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	default:
		return fmt.Sprintf("DIA%04d", uint16(c))
	}
}
