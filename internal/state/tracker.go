package state

import (
	"strconv"

	"calscan/internal/lang"
)

// Tracker owns the hierarchical lexer state and performs the keyword/text
// disambiguation. All fields are mutated only through the named operations,
// one per significant lexical event, so every transition is atomic and can be
// replayed from the observer stream.
//
// The decision operations (ObjectKeyword, SectionKeyword, Keyword, Begin,
// End, Case) return true when the word acts as a keyword here; false means
// the caller must treat the word as an identifier and feed it back through
// Identifier.
type Tracker struct {
	tables *lang.Tables
	obs    Observer

	stack                 []Context
	braceDepth            int
	bracketDepth          int
	inPropertyValue       bool
	candidateProperty     string
	lastWasSectionKeyword bool
	section               SectionKind
	column                StructuralColumn
	sectionEntryDepth     int
	underflow             bool
	lastObjectIndex       int
}

// NewTracker creates a tracker in its initial state. obs may be nil.
func NewTracker(tables *lang.Tables, obs Observer) *Tracker {
	t := &Tracker{tables: tables, obs: obs}
	t.Reset()
	return t
}

// Reset returns the tracker to its initial state. No observer events are
// emitted for the reset itself.
func (t *Tracker) Reset() {
	t.stack = append(t.stack[:0], ContextNormal)
	t.braceDepth = 0
	t.bracketDepth = 0
	t.inPropertyValue = false
	t.candidateProperty = ""
	t.lastWasSectionKeyword = false
	t.section = SectionNone
	t.column = ColumnNone
	t.sectionEntryDepth = 0
	t.underflow = false
	t.lastObjectIndex = -1
}

// Current returns the active context (the stack is never empty).
func (t *Tracker) Current() Context {
	return t.stack[len(t.stack)-1]
}

// InCode reports whether brace pairs are comments right now.
func (t *Tracker) InCode() bool {
	return t.Current().InCode()
}

// InPropertyValue reports whether the scanner is inside a property value.
func (t *Tracker) InPropertyValue() bool {
	return t.inPropertyValue
}

// protectedWord implements the protection rule: a keyword-shaped word is
// inert text when it sits in a protected structural column of the current
// section (outside a property value), or inside brackets (bracketed text,
// e.g. multi-language caption lists, is never code).
func (t *Tracker) protectedWord() bool {
	if t.bracketDepth > 0 {
		return true
	}
	if t.inPropertyValue {
		return false
	}
	col := t.column.Index()
	if col == 0 || t.section == SectionNone {
		return false
	}
	return t.tables.Protected(t.section.String(), col)
}

// ObjectKeyword handles an OBJECT keyword occurrence. index is the token
// index of the occurrence.
func (t *Tracker) ObjectKeyword(index int) bool {
	t.setLastWasSectionKeyword(false)
	if t.protectedWord() || t.inPropertyValue || t.InCode() {
		return false
	}
	t.setLastObjectIndex(index)
	if t.Current() == ContextNormal {
		t.push(ContextObjectLevel)
	}
	return true
}

// SectionKeyword handles a section keyword occurrence (FIELDS, CODE, ...).
// A section header is only plausible at object level or at the top level.
func (t *Tracker) SectionKeyword(kind SectionKind) bool {
	if t.protectedWord() || t.inPropertyValue {
		t.setLastWasSectionKeyword(false)
		return false
	}
	if cur := t.Current(); cur != ContextObjectLevel && cur != ContextNormal {
		t.setLastWasSectionKeyword(false)
		return false
	}
	t.setSection(kind)
	t.setLastWasSectionKeyword(true)
	return true
}

// Keyword handles the remaining control keywords (IF, THEN, VAR, ...). They
// are live inside code blocks and in the body of a CODE section; anywhere
// else the word is data.
func (t *Tracker) Keyword() bool {
	t.setLastWasSectionKeyword(false)
	if t.protectedWord() {
		return false
	}
	if t.InCode() {
		return true
	}
	if t.inPropertyValue {
		return false
	}
	return t.Current() == ContextSectionLevel && t.section == SectionCode
}

// Begin handles a BEGIN keyword occurrence.
func (t *Tracker) Begin() bool {
	t.setLastWasSectionKeyword(false)
	if t.protectedWord() {
		return false
	}
	if t.inPropertyValue {
		// only trigger properties hold executable code
		if !t.tables.IsTrigger(t.candidateProperty) {
			return false
		}
		t.push(ContextCodeBlock)
		return true
	}
	switch t.Current() {
	case ContextNormal, ContextSectionLevel, ContextCodeBlock, ContextCaseBlock:
		// a BEGIN right after a section-level identifier must not leave that
		// identifier behind as a property name once code parsing starts
		t.setCandidateProperty("")
		t.push(ContextCodeBlock)
		return true
	default:
		return false
	}
}

// End handles an END keyword occurrence.
func (t *Tracker) End() bool {
	t.setLastWasSectionKeyword(false)
	if t.protectedWord() {
		return false
	}
	if t.inPropertyValue {
		if !t.tables.IsTrigger(t.candidateProperty) {
			return false
		}
		t.pop()
		return true
	}
	switch t.Current() {
	case ContextCodeBlock, ContextCaseBlock:
		t.pop()
		return true
	case ContextNormal:
		// malformed input: popping the base context sets the underflow flag
		// instead of silently treating END as text
		t.pop()
		return true
	default:
		return false
	}
}

// Case handles a CASE keyword occurrence.
func (t *Tracker) Case() bool {
	t.setLastWasSectionKeyword(false)
	if t.protectedWord() {
		return false
	}
	if t.InCode() {
		t.push(ContextCaseBlock)
		return true
	}
	return false
}

// Identifier handles an identifier occurrence. Inside a section body and
// outside a property value it becomes the candidate property name.
func (t *Tracker) Identifier(name string) {
	t.setLastWasSectionKeyword(false)
	if t.Current() == ContextSectionLevel && !t.inPropertyValue {
		t.setCandidateProperty(name)
	}
}

// Plain handles any token with no dedicated operation (literals, operators
// other than the tracked delimiters).
func (t *Tracker) Plain() {
	t.setLastWasSectionKeyword(false)
}

// OpenBrace handles a structural '{'.
func (t *Tracker) OpenBrace() {
	t.setBraceDepth(t.braceDepth + 1)
	if t.lastWasSectionKeyword {
		if cur := t.Current(); cur == ContextObjectLevel || cur == ContextNormal {
			t.push(ContextSectionLevel)
			t.setSectionEntryDepth(t.braceDepth)
		}
	}
	if t.Current() == ContextSectionLevel && t.section != SectionNone &&
		t.column == ColumnNone && t.tables.IsColumnTracked(t.section.String()) {
		t.setColumn(Column1)
	}
	t.setLastWasSectionKeyword(false)
}

// CloseBrace handles a structural '}'. Leaving a tuple or a section resets
// the property machinery as one atomic step.
func (t *Tracker) CloseBrace() {
	if t.braceDepth > 0 {
		t.setBraceDepth(t.braceDepth - 1)
	}
	if t.Current() == ContextSectionLevel && t.braceDepth < t.sectionEntryDepth {
		t.pop()
		t.setSection(SectionNone)
		t.setSectionEntryDepth(0)
	}
	t.setInPropertyValue(false)
	t.setCandidateProperty("")
	t.setBracketDepth(0)
	t.setColumn(ColumnNone)
	t.setLastWasSectionKeyword(false)
}

// OpenBracket handles '['.
func (t *Tracker) OpenBracket() {
	t.setBracketDepth(t.bracketDepth + 1)
	t.setLastWasSectionKeyword(false)
}

// CloseBracket handles ']'. The depth clamps at zero.
func (t *Tracker) CloseBracket() {
	if t.bracketDepth > 0 {
		t.setBracketDepth(t.bracketDepth - 1)
	}
	t.setLastWasSectionKeyword(false)
}

// Equals handles '='. With a candidate property name pending it enters
// property-value mode.
func (t *Tracker) Equals() {
	t.setLastWasSectionKeyword(false)
	if t.candidateProperty != "" {
		t.setInPropertyValue(true)
	}
}

// Semicolon handles ';'. An unbracketed semicolon terminates the property
// value; an active structural column advances one position.
func (t *Tracker) Semicolon() {
	t.setLastWasSectionKeyword(false)
	if t.bracketDepth == 0 {
		t.setInPropertyValue(false)
		t.setCandidateProperty("")
	}
	if t.column != ColumnNone {
		t.setColumn(t.column.Advance())
	}
}

func (t *Tracker) push(c Context) {
	from := t.Current()
	t.stack = append(t.stack, c)
	if t.obs != nil {
		t.obs.Transition(Transition{Kind: TransitionPush, From: from, To: c, Depth: len(t.stack)})
	}
}

// pop removes the top context. The base element is never removed: an attempt
// to do so sets the sticky underflow flag instead.
func (t *Tracker) pop() {
	if len(t.stack) <= 1 {
		t.setUnderflow()
		return
	}
	from := t.Current()
	t.stack = t.stack[:len(t.stack)-1]
	if t.obs != nil {
		t.obs.Transition(Transition{Kind: TransitionPop, From: from, To: t.Current(), Depth: len(t.stack)})
	}
}

func (t *Tracker) setBraceDepth(v int) {
	if v == t.braceDepth {
		return
	}
	if t.obs != nil {
		t.obs.FlagChange(FlagChange{Field: "braceDepth", Old: strconv.Itoa(t.braceDepth), New: strconv.Itoa(v)})
	}
	t.braceDepth = v
}

func (t *Tracker) setBracketDepth(v int) {
	if v == t.bracketDepth {
		return
	}
	if t.obs != nil {
		t.obs.FlagChange(FlagChange{Field: "bracketDepth", Old: strconv.Itoa(t.bracketDepth), New: strconv.Itoa(v)})
	}
	t.bracketDepth = v
}

func (t *Tracker) setInPropertyValue(v bool) {
	if v == t.inPropertyValue {
		return
	}
	if t.obs != nil {
		t.obs.FlagChange(FlagChange{Field: "inPropertyValue", Old: strconv.FormatBool(t.inPropertyValue), New: strconv.FormatBool(v)})
	}
	t.inPropertyValue = v
}

func (t *Tracker) setCandidateProperty(v string) {
	if v == t.candidateProperty {
		return
	}
	if t.obs != nil {
		t.obs.FlagChange(FlagChange{Field: "candidateProperty", Old: t.candidateProperty, New: v})
	}
	t.candidateProperty = v
}

func (t *Tracker) setLastWasSectionKeyword(v bool) {
	if v == t.lastWasSectionKeyword {
		return
	}
	if t.obs != nil {
		t.obs.FlagChange(FlagChange{Field: "lastWasSectionKeyword", Old: strconv.FormatBool(t.lastWasSectionKeyword), New: strconv.FormatBool(v)})
	}
	t.lastWasSectionKeyword = v
}

func (t *Tracker) setSection(v SectionKind) {
	if v == t.section {
		return
	}
	if t.obs != nil {
		t.obs.FlagChange(FlagChange{Field: "section", Old: t.section.String(), New: v.String()})
	}
	t.section = v
}

func (t *Tracker) setColumn(v StructuralColumn) {
	if v == t.column {
		return
	}
	if t.obs != nil {
		t.obs.FlagChange(FlagChange{Field: "column", Old: t.column.String(), New: v.String()})
	}
	t.column = v
}

func (t *Tracker) setSectionEntryDepth(v int) {
	if v == t.sectionEntryDepth {
		return
	}
	if t.obs != nil {
		t.obs.FlagChange(FlagChange{Field: "sectionEntryDepth", Old: strconv.Itoa(t.sectionEntryDepth), New: strconv.Itoa(v)})
	}
	t.sectionEntryDepth = v
}

func (t *Tracker) setUnderflow() {
	if t.underflow {
		return
	}
	if t.obs != nil {
		t.obs.FlagChange(FlagChange{Field: "underflow", Old: "false", New: "true"})
	}
	t.underflow = true
}

func (t *Tracker) setLastObjectIndex(v int) {
	if v == t.lastObjectIndex {
		return
	}
	if t.obs != nil {
		t.obs.FlagChange(FlagChange{Field: "lastObjectIndex", Old: strconv.Itoa(t.lastObjectIndex), New: strconv.Itoa(v)})
	}
	t.lastObjectIndex = v
}
