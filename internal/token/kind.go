package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown indicates a malformed or unrecognized lexeme. The token still
	// carries the consumed span; tokenization never aborts on one.
	Unknown Kind = iota
	// EOF marks the end of the input. Exactly one per run.
	EOF

	// Ident represents an identifier token.
	Ident
	// QuotedIdent represents a double-quoted identifier such as "No.".
	QuotedIdent

	// KwObject represents the OBJECT declaration keyword.
	KwObject
	// KwObjectProperties represents the compound OBJECT-PROPERTIES keyword.
	KwObjectProperties
	// KwProperties represents the PROPERTIES section keyword.
	KwProperties
	// KwFields represents the FIELDS section keyword.
	KwFields
	// KwKeys represents the KEYS section keyword.
	KwKeys
	// KwFieldGroups represents the FIELDGROUPS section keyword.
	KwFieldGroups
	// KwCode represents the CODE section keyword.
	KwCode
	// KwControls represents the CONTROLS section keyword.
	KwControls
	// KwElements represents the ELEMENTS section keyword.
	KwElements
	// KwDataItems represents the DATAITEMS section keyword.
	KwDataItems
	// KwLabels represents the LABELS section keyword.
	KwLabels
	// KwActions represents the ACTIONS section keyword.
	KwActions
	// KwMenuNodes represents the MENUNODES section keyword.
	KwMenuNodes
	// KwRequestForm represents the REQUESTFORM section keyword.
	KwRequestForm
	// KwSections represents the SECTIONS section keyword.
	KwSections
	// KwEvents represents the EVENTS section keyword.
	KwEvents

	// KwBegin represents the BEGIN keyword opening a code block.
	KwBegin
	// KwEnd represents the END keyword closing a code or case block.
	KwEnd
	// KwCase represents the CASE keyword.
	KwCase
	// KwOf represents the OF keyword.
	KwOf
	KwIf
	KwThen
	KwElse
	KwRepeat
	KwUntil
	KwWhile
	KwDo
	KwFor
	KwTo
	KwDownTo
	KwWith
	KwExit
	KwVar
	KwProcedure
	KwLocal
	KwDiv
	KwMod
	KwAnd
	KwOr
	KwNot
	KwXor
	KwIn
	KwTrue
	KwFalse
	KwArray
	KwTemporary

	// Integer represents an integer literal.
	Integer
	// Decimal represents a decimal literal such as 2.5.
	Decimal
	// Date represents a date literal such as 251017D.
	Date
	// Time represents a time literal such as 120000T.
	Time
	// DateTime represents a datetime literal with a DT suffix.
	DateTime
	// String represents a single-quoted string literal. Doubled quotes escape
	// a quote; the literal may span lines.
	String

	Assign      // :=
	PlusAssign  // +=
	MinusAssign // -=
	StarAssign  // *=
	SlashAssign // /=
	Eq          // =
	Neq         // <>
	Lt          // <
	LtEq        // <=
	Gt          // >
	GtEq        // >=
	Plus        // +
	Minus       // -
	Star        // *
	Slash       // /
	DotDot      // ..
	ColonColon  // ::
	Dot         // .
	Comma       // ,
	Colon       // :
	Semicolon   // ;
	LParen      // (
	RParen      // )
	LBracket    // [
	RBracket    // ]
	LBrace      // {
	RBrace      // }
	At          // @
	Amp         // &
	Caret       // ^
	Percent     // %
	Question    // ?
)

var kindNames = map[Kind]string{
	Unknown:            "Unknown",
	EOF:                "EOF",
	Ident:              "Ident",
	QuotedIdent:        "QuotedIdent",
	KwObject:           "OBJECT",
	KwObjectProperties: "OBJECT-PROPERTIES",
	KwProperties:       "PROPERTIES",
	KwFields:           "FIELDS",
	KwKeys:             "KEYS",
	KwFieldGroups:      "FIELDGROUPS",
	KwCode:             "CODE",
	KwControls:         "CONTROLS",
	KwElements:         "ELEMENTS",
	KwDataItems:        "DATAITEMS",
	KwLabels:           "LABELS",
	KwActions:          "ACTIONS",
	KwMenuNodes:        "MENUNODES",
	KwRequestForm:      "REQUESTFORM",
	KwSections:         "SECTIONS",
	KwEvents:           "EVENTS",
	KwBegin:            "BEGIN",
	KwEnd:              "END",
	KwCase:             "CASE",
	KwOf:               "OF",
	KwIf:               "IF",
	KwThen:             "THEN",
	KwElse:             "ELSE",
	KwRepeat:           "REPEAT",
	KwUntil:            "UNTIL",
	KwWhile:            "WHILE",
	KwDo:               "DO",
	KwFor:              "FOR",
	KwTo:               "TO",
	KwDownTo:           "DOWNTO",
	KwWith:             "WITH",
	KwExit:             "EXIT",
	KwVar:              "VAR",
	KwProcedure:        "PROCEDURE",
	KwLocal:            "LOCAL",
	KwDiv:              "DIV",
	KwMod:              "MOD",
	KwAnd:              "AND",
	KwOr:               "OR",
	KwNot:              "NOT",
	KwXor:              "XOR",
	KwIn:               "IN",
	KwTrue:             "TRUE",
	KwFalse:            "FALSE",
	KwArray:            "ARRAY",
	KwTemporary:        "TEMPORARY",
	Integer:            "Integer",
	Decimal:            "Decimal",
	Date:               "Date",
	Time:               "Time",
	DateTime:           "DateTime",
	String:             "String",
	Assign:             ":=",
	PlusAssign:         "+=",
	MinusAssign:        "-=",
	StarAssign:         "*=",
	SlashAssign:        "/=",
	Eq:                 "=",
	Neq:                "<>",
	Lt:                 "<",
	LtEq:               "<=",
	Gt:                 ">",
	GtEq:               ">=",
	Plus:               "+",
	Minus:              "-",
	Star:               "*",
	Slash:              "/",
	DotDot:             "..",
	ColonColon:         "::",
	Dot:                ".",
	Comma:              ",",
	Colon:              ":",
	Semicolon:          ";",
	LParen:             "(",
	RParen:             ")",
	LBracket:           "[",
	RBracket:           "]",
	LBrace:             "{",
	RBrace:             "}",
	At:                 "@",
	Amp:                "&",
	Caret:              "^",
	Percent:            "%",
	Question:           "?",
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}
