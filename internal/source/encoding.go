package source

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// legacy code pages seen in C/SIDE object exports
var encodings = map[string]encoding.Encoding{
	"cp437":  charmap.CodePage437,
	"cp850":  charmap.CodePage850,
	"cp865":  charmap.CodePage865,
	"cp1252": charmap.Windows1252,
}

// Decode transcodes content from the named legacy code page into UTF-8.
func Decode(content []byte, name string) ([]byte, error) {
	enc, ok := encodings[name]
	if !ok {
		return nil, fmt.Errorf("unknown encoding: %q (expected: cp437|cp850|cp865|cp1252|utf8)", name)
	}
	return enc.NewDecoder().Bytes(content)
}

// Encodings lists the supported legacy code page names.
func Encodings() []string {
	return []string{"cp437", "cp850", "cp865", "cp1252", "utf8"}
}
