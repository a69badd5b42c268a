package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"calscan/internal/diag"
	"calscan/internal/source"
	"calscan/internal/state"
	"calscan/internal/token"
)

// TokenizeDirResult is the outcome for one file of a directory run.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
	Final  state.Snapshot
	Err    error // load failure; Tokens is nil then
}

// listObjectFiles returns the sorted *.txt files under dir, recursively.
func listObjectFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".txt") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every object-text file under dir, up to jobs files at
// a time. Results keep the sorted file order regardless of completion order.
// Per-run options apply to every file; a shared trace sink must be safe for
// concurrent use (the bundled ring and stream sinks are).
func TokenizeDir(ctx context.Context, dir string, jobs int, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listObjectFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// loading is serial: the FileSet is not safe for concurrent mutation
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		var (
			id  source.FileID
			err error
		)
		if opts.Encoding != "" {
			id, err = fileSet.LoadEncoded(path, opts.Encoding)
		} else {
			id, err = fileSet.Load(path)
		}
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				results[i] = TokenizeDirResult{Path: path, Err: loadErr}
				return nil
			}

			fileID := fileIDs[path]
			res, err := run(fileSet, fileID, opts)
			if err != nil {
				return err
			}
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: res.Tokens,
				Bag:    res.Bag,
				Final:  res.Final,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
