package state

// Snapshot is a copy of the tracked state at one point in time. The final
// snapshot of a run carries the sticky underflow flag and any depths still
// open at end of input.
type Snapshot struct {
	Contexts              []Context
	BraceDepth            int
	BracketDepth          int
	InPropertyValue       bool
	CandidateProperty     string
	LastWasSectionKeyword bool
	Section               SectionKind
	Column                StructuralColumn
	SectionEntryDepth     int
	Underflow             bool
	LastObjectIndex       int
}

// Snapshot copies the current state.
func (t *Tracker) Snapshot() Snapshot {
	contexts := make([]Context, len(t.stack))
	copy(contexts, t.stack)
	return Snapshot{
		Contexts:              contexts,
		BraceDepth:            t.braceDepth,
		BracketDepth:          t.bracketDepth,
		InPropertyValue:       t.inPropertyValue,
		CandidateProperty:     t.candidateProperty,
		LastWasSectionKeyword: t.lastWasSectionKeyword,
		Section:               t.section,
		Column:                t.column,
		SectionEntryDepth:     t.sectionEntryDepth,
		Underflow:             t.underflow,
		LastObjectIndex:       t.lastObjectIndex,
	}
}
