package token

import "strings"

// Keys are upper-case; lookups fold case first. The language is fully
// case-insensitive, so `Begin`, `BEGIN`, and `begin` are the same word.
var keywords = map[string]Kind{
	"OBJECT":      KwObject,
	"PROPERTIES":  KwProperties,
	"FIELDS":      KwFields,
	"KEYS":        KwKeys,
	"FIELDGROUPS": KwFieldGroups,
	"CODE":        KwCode,
	"CONTROLS":    KwControls,
	"ELEMENTS":    KwElements,
	"DATAITEMS":   KwDataItems,
	"LABELS":      KwLabels,
	"ACTIONS":     KwActions,
	"MENUNODES":   KwMenuNodes,
	"REQUESTFORM": KwRequestForm,
	"SECTIONS":    KwSections,
	"EVENTS":      KwEvents,
	"BEGIN":       KwBegin,
	"END":         KwEnd,
	"CASE":        KwCase,
	"OF":          KwOf,
	"IF":          KwIf,
	"THEN":        KwThen,
	"ELSE":        KwElse,
	"REPEAT":      KwRepeat,
	"UNTIL":       KwUntil,
	"WHILE":       KwWhile,
	"DO":          KwDo,
	"FOR":         KwFor,
	"TO":          KwTo,
	"DOWNTO":      KwDownTo,
	"WITH":        KwWith,
	"EXIT":        KwExit,
	"VAR":         KwVar,
	"PROCEDURE":   KwProcedure,
	"LOCAL":       KwLocal,
	"DIV":         KwDiv,
	"MOD":         KwMod,
	"AND":         KwAnd,
	"OR":          KwOr,
	"NOT":         KwNot,
	"XOR":         KwXor,
	"IN":          KwIn,
	"TRUE":        KwTrue,
	"FALSE":       KwFalse,
	"ARRAY":       KwArray,
	"TEMPORARY":   KwTemporary,
}

// LookupKeyword returns the keyword kind for an identifier-shaped lexeme.
// Matching is case-insensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[strings.ToUpper(ident)]
	return k, ok
}
