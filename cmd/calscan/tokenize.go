package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"calscan/internal/diag"
	"calscan/internal/driver"
	"calscan/internal/lang"
	"calscan/internal/source"
	"calscan/internal/tokfmt"
	"calscan/internal/trace"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.txt|directory>",
	Short: "Tokenize object text",
	Long:  `Tokenize turns one exported object file, or every *.txt file under a directory, into its token stream`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().String("encoding", "", "legacy code page of the input (cp437|cp850|cp865|cp1252)")
	tokenizeCmd.Flags().String("tables", "", "TOML file overriding the built-in language tables")
	tokenizeCmd.Flags().String("trace", "", "write an NDJSON event trace to this path ('-' for stderr)")
	tokenizeCmd.Flags().Int("trace-ring", 0, "keep only the last N trace events (0 streams everything)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers in directory mode (0 uses GOMAXPROCS)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, _ := cmd.Flags().GetString("format")
	encoding, _ := cmd.Flags().GetString("encoding")
	tablesPath, _ := cmd.Flags().GetString("tables")
	jobs, _ := cmd.Flags().GetInt("jobs")
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	tables := lang.Default()
	if tablesPath != "" {
		tables, err = lang.Load(tablesPath)
		if err != nil {
			return fmt.Errorf("language tables: %w", err)
		}
	}

	sink, finishTrace, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer finishTrace()

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Encoding:       encoding,
		Tables:         tables,
		Sink:           sink,
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return tokenizeDir(cmd, path, jobs, format, opts)
	}
	return tokenizeFile(cmd, path, format, opts)
}

func tokenizeFile(cmd *cobra.Command, path, format string, opts driver.Options) error {
	result, err := driver.Tokenize(path, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	printDiagnostics(cmd, result.Bag, result.FileSet)
	return writeOutput(cmd, format, result)
}

func tokenizeDir(cmd *cobra.Command, dir string, jobs int, format string, opts driver.Options) error {
	if format == "msgpack" {
		return fmt.Errorf("msgpack output is per-file, point at a single file")
	}
	fileSet, results, err := driver.TokenizeDir(cmd.Context(), dir, jobs, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		printDiagnostics(cmd, r.Bag, fileSet)
		if !quiet {
			fmt.Fprintf(os.Stdout, "== %s\n", r.Path)
		}
		out := &driver.TokenizeResult{
			FileSet: fileSet,
			File:    fileSet.Get(r.FileID),
			Tokens:  r.Tokens,
			Bag:     r.Bag,
			Final:   r.Final,
		}
		if err := writeOutput(cmd, format, out); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed to load", failed)
	}
	return nil
}

func writeOutput(cmd *cobra.Command, format string, result *driver.TokenizeResult) error {
	switch format {
	case "pretty":
		return tokfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet, result.Bag, tokfmt.PrettyOptions{
			Color: useColor(cmd, os.Stdout),
		})
	case "json":
		return tokfmt.FormatTokensJSON(os.Stdout, result.Tokens, result.FileSet, result.File, result.Bag, result.Final.Underflow)
	case "msgpack":
		return tokfmt.WriteMsgpack(os.Stdout, result.File.Path, result.Tokens, result.Final.Underflow)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fileSet *source.FileSet) {
	if bag.Len() == 0 {
		return
	}
	_ = tokfmt.FormatDiagnosticsPretty(os.Stderr, bag, fileSet, useColor(cmd, os.Stderr))
}

// setupTracing builds the trace sink from the tokenize flags. The returned
// cleanup flushes a stream or dumps the ring once the run is over.
func setupTracing(cmd *cobra.Command) (trace.Sink, func(), error) {
	tracePath, _ := cmd.Flags().GetString("trace")
	ringSize, _ := cmd.Flags().GetInt("trace-ring")

	if tracePath == "" {
		return nil, func() {}, nil
	}

	var (
		w       io.Writer
		closeFn func() error
	)
	if tracePath == "-" {
		w = os.Stderr
		closeFn = func() error { return nil }
	} else {
		f, err := os.Create(tracePath)
		if err != nil {
			return nil, nil, fmt.Errorf("trace output: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	if ringSize > 0 {
		ring := trace.NewRingSink(ringSize)
		cleanup := func() {
			if err := ring.Dump(w); err != nil {
				fmt.Fprintf(os.Stderr, "trace dump: %v\n", err)
			}
			if err := closeFn(); err != nil {
				fmt.Fprintf(os.Stderr, "trace close: %v\n", err)
			}
		}
		return ring, cleanup, nil
	}

	stream := trace.NewStreamSink(w)
	cleanup := func() {
		if err := stream.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "trace flush: %v\n", err)
		}
		if err := closeFn(); err != nil {
			fmt.Fprintf(os.Stderr, "trace close: %v\n", err)
		}
	}
	return stream, cleanup, nil
}
