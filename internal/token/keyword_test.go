package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"BEGIN":      KwBegin,
		"begin":      KwBegin,
		"Begin":      KwBegin,
		"end":        KwEnd,
		"CASE":       KwCase,
		"Fields":     KwFields,
		"code":       KwCode,
		"Object":     KwObject,
		"properties": KwProperties,
		"downto":     KwDownTo,
		"DIV":        KwDiv,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Text50", "Code20", // type names carry a width and are identifiers
		"OnValidate", "CaptionML",
		"Customer", "No",
		"", "BEGINX",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestKindString(t *testing.T) {
	if KwObjectProperties.String() != "OBJECT-PROPERTIES" {
		t.Errorf("KwObjectProperties.String() = %q", KwObjectProperties.String())
	}
	if EOF.String() != "EOF" {
		t.Errorf("EOF.String() = %q", EOF.String())
	}
	if Kind(250).String() != "Kind(?)" {
		t.Errorf("unknown kind String() = %q", Kind(250).String())
	}
}

func TestKindClassPredicates(t *testing.T) {
	tok := func(k Kind) Token { return Token{Kind: k} }

	if !tok(KwFields).IsSectionKeyword() || !tok(KwEvents).IsSectionKeyword() {
		t.Error("section keywords not classified as such")
	}
	if tok(KwObject).IsSectionKeyword() || tok(KwBegin).IsSectionKeyword() {
		t.Error("non-section keywords classified as section keywords")
	}
	if !tok(KwObject).IsKeyword() || !tok(KwTemporary).IsKeyword() {
		t.Error("keyword range predicate broken at the edges")
	}
	if !tok(Date).IsLiteral() || tok(Ident).IsLiteral() {
		t.Error("literal predicate broken")
	}
	if !tok(Assign).IsPunctOrOp() || !tok(Question).IsPunctOrOp() || tok(String).IsPunctOrOp() {
		t.Error("operator predicate broken")
	}
	if !tok(QuotedIdent).IsIdent() {
		t.Error("quoted identifiers are identifiers")
	}
}
