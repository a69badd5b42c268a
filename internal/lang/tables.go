package lang

import (
	"fmt"
	"strings"

	"calscan/internal/token"
)

// ColumnRange is an inclusive 1-based range of structural columns.
type ColumnRange struct {
	First int `toml:"first"`
	Last  int `toml:"last"`
}

// Compound describes a speculative two-word token such as OBJECT-PROPERTIES.
// Sep is a single separator byte ("-" or "/").
type Compound struct {
	First  string `toml:"first"`
	Sep    string `toml:"sep"`
	Second string `toml:"second"`
	Kind   string `toml:"kind"`
}

// Tables holds the disambiguation tables of the language. The sets shipped in
// Default cover the observed corpus; they are deliberately data, not code, so
// they can be corrected against the full language reference without a rebuild.
type Tables struct {
	// TriggerProperties are the only property names whose value is executable
	// code. Matching is case-insensitive.
	TriggerProperties []string `toml:"trigger_properties"`
	// ProtectedColumns maps a section name to the structural columns in which
	// keyword-shaped words are inert text.
	ProtectedColumns map[string]ColumnRange `toml:"protected_columns"`
	// ColumnTracked lists the section names whose tuples are column-tracked.
	ColumnTracked []string `toml:"column_tracked"`
	// Compounds lists speculative two-word tokens.
	Compounds []Compound `toml:"compound_tokens"`

	triggers  map[string]struct{}
	tracked   map[string]struct{}
	compounds map[string]Compound
}

// compound token kinds addressable from configuration
var compoundKinds = map[string]token.Kind{
	"OBJECT-PROPERTIES": token.KwObjectProperties,
}

// normalize builds the case-folded lookup sets. Must be called after the
// exported fields change.
func (t *Tables) normalize() error {
	t.triggers = make(map[string]struct{}, len(t.TriggerProperties))
	for _, name := range t.TriggerProperties {
		t.triggers[strings.ToUpper(name)] = struct{}{}
	}
	t.tracked = make(map[string]struct{}, len(t.ColumnTracked))
	for _, name := range t.ColumnTracked {
		t.tracked[strings.ToLower(name)] = struct{}{}
	}
	t.compounds = make(map[string]Compound, len(t.Compounds))
	for _, c := range t.Compounds {
		if len(c.Sep) != 1 {
			return fmt.Errorf("compound %s%s%s: separator must be one byte", c.First, c.Sep, c.Second)
		}
		if _, ok := compoundKinds[c.Kind]; !ok {
			return fmt.Errorf("compound %s%s%s: unknown token kind %q", c.First, c.Sep, c.Second, c.Kind)
		}
		t.compounds[strings.ToUpper(c.First)] = c
	}
	return nil
}

// IsTrigger reports whether the property name carries executable code.
func (t *Tables) IsTrigger(name string) bool {
	_, ok := t.triggers[strings.ToUpper(name)]
	return ok
}

// Protected reports whether the given 1-based structural column is a
// protected position for the named section.
func (t *Tables) Protected(section string, column int) bool {
	r, ok := t.ProtectedColumns[strings.ToLower(section)]
	if !ok {
		return false
	}
	return column >= r.First && column <= r.Last
}

// IsColumnTracked reports whether tuples of the named section advance
// structural columns on semicolons.
func (t *Tables) IsColumnTracked(section string) bool {
	_, ok := t.tracked[strings.ToLower(section)]
	return ok
}

// CompoundFor returns the speculative compound entry whose first word matches
// the given lexeme, if any. Matching is case-insensitive.
func (t *Tables) CompoundFor(first string) (Compound, bool) {
	c, ok := t.compounds[strings.ToUpper(first)]
	return c, ok
}

// KindOf resolves a compound entry to its token kind. Entries are validated
// in normalize, so this cannot miss for a Compound returned by CompoundFor.
func (c Compound) KindOf() token.Kind {
	return compoundKinds[c.Kind]
}
