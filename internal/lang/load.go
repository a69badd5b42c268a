package lang

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Load reads a TOML override file on top of the built-in tables. A field that
// is absent from the file keeps its default; a field that is present replaces
// the default wholesale.
func Load(path string) (*Tables, error) {
	var override Tables
	meta, err := toml.DecodeFile(path, &override)
	if err != nil {
		return nil, fmt.Errorf("load tables %s: %w", path, err)
	}

	t := Default()
	if meta.IsDefined("trigger_properties") {
		t.TriggerProperties = override.TriggerProperties
	}
	if meta.IsDefined("protected_columns") {
		t.ProtectedColumns = override.ProtectedColumns
	}
	if meta.IsDefined("column_tracked") {
		t.ColumnTracked = override.ColumnTracked
	}
	if meta.IsDefined("compound_tokens") {
		t.Compounds = override.Compounds
	}
	if err := t.normalize(); err != nil {
		return nil, fmt.Errorf("load tables %s: %w", path, err)
	}
	return t, nil
}
