package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"calscan/internal/driver"
	"calscan/internal/source"
	"calscan/internal/token"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleObject = `OBJECT Table 18 Customer
{
  PROPERTIES
  {
    OnInsert=BEGIN
               "No." := 1;
             END;
  }
  FIELDS
  {
    { 1 ; ; No. ; Code20 }
  }
}
`

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "customer.txt", []byte(sampleObject))

	res, err := driver.Tokenize(path, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatal("Token array must end with EOF")
	}
	if res.Tokens[0].Kind != token.KwObject {
		t.Errorf("First token: got %v, want OBJECT", res.Tokens[0].Kind)
	}
	if res.Bag.HasWarnings() {
		t.Errorf("Clean input must produce no diagnostics: %v", res.Bag.Items())
	}
	if res.Final.Underflow || res.Final.BraceDepth != 0 {
		t.Errorf("Final state not clean: %+v", res.Final)
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := driver.Tokenize(filepath.Join(t.TempDir(), "absent.txt"), driver.Options{})
	if err == nil {
		t.Fatal("Expected a load error")
	}
}

func TestTokenizeBytes(t *testing.T) {
	res, err := driver.TokenizeBytes("inline.txt", []byte("BEGIN x := 1; END"), driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.File.Flags&source.FileVirtual == 0 {
		t.Error("Virtual file flag missing")
	}
	if got := len(res.Tokens); got != 7 {
		t.Errorf("Token count: got %d, want 7 (EOF included)", got)
	}
}

func TestTokenizeMalformedInputCollectsDiagnostics(t *testing.T) {
	res, err := driver.TokenizeBytes("bad.txt", []byte("x := 'unterminated"), driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasWarnings() {
		t.Error("Expected a diagnostic for the unterminated string")
	}
	if res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Error("Diagnostics must not truncate the token array")
	}
}

func TestTokenizeLegacyEncoding(t *testing.T) {
	dir := t.TempDir()
	// 0x9B is 'ø' in cp850
	path := writeFile(t, dir, "danish.txt", []byte{'S', 0x9B, ';'})

	res, err := driver.Tokenize(path, driver.Options{Encoding: "cp850"})
	if err != nil {
		t.Fatal(err)
	}
	if res.File.Flags&source.FileDecoded == 0 {
		t.Error("Decoded file flag missing")
	}
	if res.Tokens[0].Kind != token.Ident || res.Tokens[0].Text != "Sø" {
		t.Errorf("Got %v(%q), want Ident(\"Sø\")", res.Tokens[0].Kind, res.Tokens[0].Text)
	}
}

func TestTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", []byte(sampleObject))
	writeFile(t, dir, "a.txt", []byte("FIELDS\n{\n}\n"))
	writeFile(t, dir, "notes.md", []byte("not object text"))

	fileSet, results, err := driver.TokenizeDir(context.Background(), dir, 4, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("Got %d results, want 2 (only *.txt files)", len(results))
	}
	if filepath.Base(results[0].Path) != "a.txt" || filepath.Base(results[1].Path) != "b.txt" {
		t.Errorf("Results must keep sorted file order: %q, %q", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Path, r.Err)
		}
		if len(r.Tokens) == 0 || r.Tokens[len(r.Tokens)-1].Kind != token.EOF {
			t.Errorf("%s: token array must end with EOF", r.Path)
		}
		if fileSet.Get(r.FileID).Path == "" {
			t.Errorf("%s: file missing from set", r.Path)
		}
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	_, results, err := driver.TokenizeDir(context.Background(), t.TempDir(), 0, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("Got %d results, want 0", len(results))
	}
}

func TestTokenizeDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte(sampleObject))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := driver.TokenizeDir(ctx, dir, 1, driver.Options{}); err == nil {
		t.Fatal("Expected the cancelled context to abort the run")
	}
}
