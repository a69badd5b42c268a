package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB cap for corpus entries

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)

	// minimal built-in corpus, independent of testdata presence
	f.Add([]byte{})
	f.Add([]byte("OBJECT Table 18 Customer\n{\n}\n"))
	f.Add([]byte("OBJECT-PROPERTIES\n{\n  Date=25.10.17;\n}\n"))
	f.Add([]byte("PROPERTIES\n{\n  OnValidate=BEGIN\n    MESSAGE('hi');\n  END;\n}\n"))
	f.Add([]byte("FIELDS\n{\n  { 1 ; ; Code ; Code10 }\n}\n"))
	f.Add([]byte("CODE\n{\n  BEGIN { comment } END;\n}\n"))
	f.Add([]byte("CaptionML=[ENU=Begin;DAN=Slut];"))
	f.Add([]byte("END END END"))
	f.Add([]byte("'unterminated"))
	f.Add([]byte("x := 'a\r\nb';"))
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".txt" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
