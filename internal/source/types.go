package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 byte order mark was stripped on load.
	FileHadBOM
	// FileDecoded indicates the content was transcoded from a legacy code page.
	FileDecoded
)

// File captures metadata and content for a single object-text file.
//
// Content is kept byte-for-byte as loaded (after optional code-page decoding).
// CRLF sequences are NOT normalized: multi-line string literals must preserve
// the exact line-ending bytes of the source.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
