package state

// TransitionKind distinguishes context pushes from pops.
type TransitionKind uint8

const (
	TransitionPush TransitionKind = iota + 1
	TransitionPop
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionPush:
		return "push"
	case TransitionPop:
		return "pop"
	default:
		return "unknown"
	}
}

// Transition records one context stack change.
type Transition struct {
	Kind  TransitionKind
	From  Context
	To    Context
	Depth int // stack depth after the transition
}

// FlagChange records one tracked field changing value. Old and New are the
// display forms of the values.
type FlagChange struct {
	Field string
	Old   string
	New   string
}

// Observer receives every transition and flag change, in the order they
// occur. A nil observer costs nothing: the tracker checks for nil before
// building any record.
type Observer interface {
	Transition(t Transition)
	FlagChange(f FlagChange)
}
