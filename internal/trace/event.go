package trace

import (
	"calscan/internal/source"
)

// EventKind represents the type of trace event.
type EventKind uint8

const (
	// EventToken is emitted for every token placed into the output array.
	EventToken EventKind = iota + 1
	// EventSkip is emitted for every skipped region (whitespace, newline,
	// comments of all three families).
	EventSkip
	// EventContextPush is emitted when the tracker pushes a context.
	EventContextPush
	// EventContextPop is emitted when the tracker pops a context.
	EventContextPop
	// EventFlagChange is emitted when any tracked state field changes.
	EventFlagChange
	// EventSpeculativeFail is emitted when a compound-token attempt falls
	// back to the single first word. Not an error.
	EventSpeculativeFail
)

func (k EventKind) String() string {
	switch k {
	case EventToken:
		return "token"
	case EventSkip:
		return "skip"
	case EventContextPush:
		return "push"
	case EventContextPop:
		return "pop"
	case EventFlagChange:
		return "flag"
	case EventSpeculativeFail:
		return "speculative-fail"
	default:
		return "unknown"
	}
}

// SkipClass categorizes skipped regions.
type SkipClass uint8

const (
	SkipWhitespace SkipClass = iota + 1
	SkipNewline
	SkipLineComment
	SkipBraceComment
	SkipCComment
)

func (c SkipClass) String() string {
	switch c {
	case SkipWhitespace:
		return "whitespace"
	case SkipNewline:
		return "newline"
	case SkipLineComment:
		return "line-comment"
	case SkipBraceComment:
		return "brace-comment"
	case SkipCComment:
		return "c-comment"
	default:
		return "unknown"
	}
}

// Event is a single trace record. Seq is monotonic within one tokenize run,
// so a sink sees events in strict chronological order. Only the fields
// relevant to the Kind are populated.
type Event struct {
	Seq  uint64      `json:"seq"`
	Kind EventKind   `json:"kind"`
	Span source.Span `json:"span"`

	// EventToken
	Token string `json:"token,omitempty"`
	Text  string `json:"text,omitempty"`

	// EventSkip
	Skip SkipClass `json:"skip,omitempty"`

	// EventContextPush / EventContextPop
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
	Depth int    `json:"depth,omitempty"`

	// EventFlagChange
	Flag string `json:"flag,omitempty"`
	Old  string `json:"old,omitempty"`
	New  string `json:"new,omitempty"`

	// EventSpeculativeFail
	First    string `json:"first,omitempty"`
	Sep      string `json:"sep,omitempty"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
	Reason   string `json:"reason,omitempty"`
}
