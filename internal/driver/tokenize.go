package driver

import (
	"calscan/internal/diag"
	"calscan/internal/lang"
	"calscan/internal/lexer"
	"calscan/internal/source"
	"calscan/internal/state"
	"calscan/internal/token"
	"calscan/internal/trace"
)

// Options configures one tokenize run.
type Options struct {
	MaxDiagnostics int          // cap on collected diagnostics; <= 0 means a sensible default
	Encoding       string       // legacy code page to decode from, empty for raw bytes
	Tables         *lang.Tables // nil for the built-in tables
	Sink           trace.Sink   // nil disables tracing entirely
}

const defaultMaxDiagnostics = 100

// TokenizeResult bundles everything one file run produces.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Final   state.Snapshot
}

// Tokenize loads one file from disk and tokenizes it.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fileSet := source.NewFileSet()

	var (
		fileID source.FileID
		err    error
	)
	if opts.Encoding != "" {
		fileID, err = fileSet.LoadEncoded(path, opts.Encoding)
	} else {
		fileID, err = fileSet.Load(path)
	}
	if err != nil {
		return nil, err
	}
	return run(fileSet, fileID, opts)
}

// TokenizeBytes tokenizes in-memory content under a virtual file name.
func TokenizeBytes(name string, content []byte, opts Options) (*TokenizeResult, error) {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, content)
	return run(fileSet, fileID, opts)
}

func run(fileSet *source.FileSet, fileID source.FileID, opts Options) (*TokenizeResult, error) {
	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = defaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)
	file := fileSet.Get(fileID)

	lx := lexer.New(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
		Sink:     opts.Sink,
		Tables:   opts.Tables,
	})
	res, err := lx.Tokenize()
	if err != nil {
		return nil, err
	}

	return &TokenizeResult{
		FileSet: fileSet,
		File:    file,
		Tokens:  res.Tokens,
		Bag:     bag,
		Final:   res.Final,
	}, nil
}
