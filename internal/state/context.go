package state

// Context identifies where in the document hierarchy the scanner currently is.
// The meaning of braces and of keyword-shaped words depends on it.
type Context uint8

const (
	// ContextNormal is the base context outside any declaration. The context
	// stack always keeps at least one ContextNormal element.
	ContextNormal Context = iota
	// ContextObjectLevel is the body of an OBJECT declaration.
	ContextObjectLevel
	// ContextSectionLevel is the body of a named section (FIELDS, CODE, ...).
	ContextSectionLevel
	// ContextCodeBlock is a BEGIN..END region. Braces are comments here.
	ContextCodeBlock
	// ContextCaseBlock is a CASE..END region. Braces are comments here.
	ContextCaseBlock
)

func (c Context) String() string {
	switch c {
	case ContextNormal:
		return "normal"
	case ContextObjectLevel:
		return "object"
	case ContextSectionLevel:
		return "section"
	case ContextCodeBlock:
		return "code"
	case ContextCaseBlock:
		return "case"
	default:
		return "unknown"
	}
}

// InCode reports whether brace pairs are comments in this context.
func (c Context) InCode() bool {
	return c == ContextCodeBlock || c == ContextCaseBlock
}

// StructuralColumn tracks the position inside a semicolon-delimited tuple.
type StructuralColumn uint8

const (
	// ColumnNone means no tuple is being tracked.
	ColumnNone StructuralColumn = iota
	Column1
	Column2
	Column3
	Column4
	// ColumnPropertiesTail is the free-form property list after the fixed
	// columns. Further semicolons stay here.
	ColumnPropertiesTail
)

func (c StructuralColumn) String() string {
	switch c {
	case ColumnNone:
		return "none"
	case Column1:
		return "col1"
	case Column2:
		return "col2"
	case Column3:
		return "col3"
	case Column4:
		return "col4"
	case ColumnPropertiesTail:
		return "tail"
	default:
		return "unknown"
	}
}

// Index returns the 1-based column number, or 0 when no fixed column is
// active (ColumnNone and ColumnPropertiesTail).
func (c StructuralColumn) Index() int {
	if c >= Column1 && c <= Column4 {
		return int(c)
	}
	return 0
}

// Advance moves one position per semicolon. Column4 advances into the
// properties tail and stays there.
func (c StructuralColumn) Advance() StructuralColumn {
	switch {
	case c == ColumnNone:
		return ColumnNone
	case c >= ColumnPropertiesTail:
		return ColumnPropertiesTail
	default:
		return c + 1
	}
}

// SectionKind names the section the scanner is inside, while the context is
// ContextSectionLevel.
type SectionKind uint8

const (
	SectionNone SectionKind = iota
	SectionObjectProperties
	SectionProperties
	SectionFields
	SectionKeys
	SectionFieldGroups
	SectionCode
	SectionControls
	SectionElements
	SectionDataItems
	SectionLabels
	SectionActions
	SectionMenuNodes
	SectionRequestForm
	SectionSections
	SectionEvents
)

var sectionNames = map[SectionKind]string{
	SectionNone:             "none",
	SectionObjectProperties: "object-properties",
	SectionProperties:       "properties",
	SectionFields:           "fields",
	SectionKeys:             "keys",
	SectionFieldGroups:      "fieldgroups",
	SectionCode:             "code",
	SectionControls:         "controls",
	SectionElements:         "elements",
	SectionDataItems:        "dataitems",
	SectionLabels:           "labels",
	SectionActions:          "actions",
	SectionMenuNodes:        "menunodes",
	SectionRequestForm:      "requestform",
	SectionSections:         "sections",
	SectionEvents:           "events",
}

// String returns the section name. It doubles as the lookup key into the
// lang tables.
func (s SectionKind) String() string {
	if n, ok := sectionNames[s]; ok {
		return n
	}
	return "unknown"
}
