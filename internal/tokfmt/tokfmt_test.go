package tokfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"calscan/internal/driver"
	"calscan/internal/tokfmt"
)

func tokenizeSample(t *testing.T) *driver.TokenizeResult {
	t.Helper()
	res, err := driver.TokenizeBytes("sample.txt", []byte("BEGIN x := 'hi'; END"), driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestFormatTokensPretty(t *testing.T) {
	res := tokenizeSample(t)

	var buf bytes.Buffer
	err := tokfmt.FormatTokensPretty(&buf, res.Tokens, res.FileSet, res.Bag, tokfmt.PrettyOptions{})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"BEGIN", "Ident", "String", "EOF", "at 1:1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "7 tokens") {
		t.Errorf("Summary missing or wrong:\n%s", out)
	}
}

func TestFormatTokensPrettyTruncatesLongText(t *testing.T) {
	res, err := driver.TokenizeBytes("long.txt", []byte("'"+strings.Repeat("a", 200)+"'"), driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tokfmt.FormatTokensPretty(&buf, res.Tokens, res.FileSet, res.Bag, tokfmt.PrettyOptions{MaxTextWidth: 10}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "…") {
		t.Error("Long token text must be truncated with an ellipsis")
	}
}

func TestFormatTokensJSON(t *testing.T) {
	res := tokenizeSample(t)

	var buf bytes.Buffer
	err := tokfmt.FormatTokensJSON(&buf, res.Tokens, res.FileSet, res.File, res.Bag, res.Final.Underflow)
	if err != nil {
		t.Fatal(err)
	}

	var out tokfmt.Output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if out.Path != "sample.txt" {
		t.Errorf("Path: got %q", out.Path)
	}
	if len(out.Tokens) != len(res.Tokens) {
		t.Fatalf("Got %d tokens, want %d", len(out.Tokens), len(res.Tokens))
	}
	if out.Tokens[0].Kind != "BEGIN" || out.Tokens[0].Line != 1 {
		t.Errorf("First token: %+v", out.Tokens[0])
	}
	if len(out.Diagnostics) != 0 {
		t.Errorf("Clean input, got diagnostics: %+v", out.Diagnostics)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	res := tokenizeSample(t)

	var buf bytes.Buffer
	if err := tokfmt.WriteMsgpack(&buf, "sample.txt", res.Tokens, res.Final.Underflow); err != nil {
		t.Fatal(err)
	}
	payload, err := tokfmt.ReadMsgpack(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if payload.Path != "sample.txt" || len(payload.Kinds) != len(res.Tokens) {
		t.Fatalf("Payload: %+v", payload)
	}
	for i, tok := range res.Tokens {
		if payload.Kinds[i] != uint8(tok.Kind) || payload.Texts[i] != tok.Text ||
			payload.Starts[i] != tok.Span.Start || payload.Lines[i] != tok.Pos.Line {
			t.Errorf("Token %d does not round-trip: %+v", i, tok)
		}
	}
}

func TestMsgpackRejectsUnknownSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(&tokfmt.MsgpackPayload{Schema: 999}); err != nil {
		t.Fatal(err)
	}
	if _, err := tokfmt.ReadMsgpack(&buf); err == nil {
		t.Fatal("Expected a schema version error")
	}
}
