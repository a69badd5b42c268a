package diag

import (
	"testing"

	"calscan/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := b.Add(Diagnostic{Severity: SevWarning, Code: LexUnknownChar})
		if i < 2 && !ok {
			t.Fatalf("add %d rejected below the limit", i)
		}
		if i == 2 && ok {
			t.Fatal("add beyond the limit was accepted")
		}
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagLimitBeyondCounterWidth(t *testing.T) {
	b := NewBag(1 << 20)
	for i := 0; i < 3; i++ {
		if !b.Add(Diagnostic{Severity: SevWarning, Code: LexUnknownChar}) {
			t.Fatalf("add %d rejected under a large limit", i)
		}
	}
	if b.Len() != 3 {
		t.Errorf("Len = %d, want 3", b.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(8)
	if b.HasErrors() || b.HasWarnings() {
		t.Error("empty bag reports errors/warnings")
	}
	b.Add(Diagnostic{Severity: SevWarning})
	if b.HasErrors() {
		t.Error("warning counted as error")
	}
	if !b.HasWarnings() {
		t.Error("warning not counted")
	}
	b.Add(Diagnostic{Severity: SevError})
	if !b.HasErrors() {
		t.Error("error not counted")
	}
}

func TestBagReporter(t *testing.T) {
	b := NewBag(4)
	r := &BagReporter{Bag: b}
	r.Report(LexUnterminatedString, source.Span{Start: 3, End: 9}, "unterminated string literal")

	items := b.Items()
	if len(items) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(items))
	}
	d := items[0]
	if d.Code != LexUnterminatedString || d.Primary.Start != 3 || d.Severity != SevWarning {
		t.Errorf("unexpected diagnostic: %+v", d)
	}
}

func TestCodeID(t *testing.T) {
	if got := LexUnterminatedString.ID(); got != "LEX1002" {
		t.Errorf("ID = %q, want LEX1002", got)
	}
	if got := UnknownCode.ID(); got != "UNK0000" {
		t.Errorf("ID = %q, want UNK0000", got)
	}
}
