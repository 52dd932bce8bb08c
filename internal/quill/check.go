package quill

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/quill/internal/syntax/resolver"
	"golang.org/x/sync/errgroup"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string
}

// checked is the outcome of checking a single file.
type checked struct {
	report      bytes.Buffer // Rendered diagnostics, empty if there were none
	diagnostics int          // Number of diagnostics, warnings included
	failed      bool         // Whether any of the diagnostics were errors
}

// Check implements the check subcommand.
//
// Files are checked concurrently but output is written in path order once every
// file has been checked, so it is the same from run to run.
func (q Quill) Check(ctx context.Context, options CheckOptions) error {
	logger := q.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path")

	paths, err := collect(options.Path)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		return fmt.Errorf("no %s files found in %s", Extension, options.Path)
	}

	logger.Debug("Checking quill files given by path", slog.Int("number", len(paths)))

	results := make([]checked, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			contents, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("could not read file: %w", err)
			}

			src := q.parse(logger, path, string(contents))
			resolver.New(src.bag).Resolve(src.file)

			results[i].diagnostics = src.bag.Len()
			results[i].failed = src.bag.HasErrors()

			return q.report(&results[i].report, src)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	total := 0
	failed := 0

	for i, path := range paths {
		result := &results[i]
		if result.diagnostics != 0 {
			name := q.style(warning, path)
			if result.failed {
				name = q.style(failure, path)
			}

			fmt.Fprintf(q.stderr, "%s %s\n", name, q.style(dimmed, "("+plural(result.diagnostics, "diagnostic")+")"))

			if _, err := result.report.WriteTo(q.stderr); err != nil {
				return fmt.Errorf("could not write diagnostics: %w", err)
			}
		}

		if !result.failed {
			msg.Fsuccess(q.stdout, "%s is valid", path)
			continue
		}

		total += result.diagnostics
		failed++
	}

	if failed != 0 {
		return fmt.Errorf("%w: %s in %s", ErrSyntax, plural(total, "diagnostic"), plural(failed, "file"))
	}

	return nil
}

// collect returns the quill files under path, or path itself if it's a file.
func collect(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not get path info: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var paths []string

	err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && filepath.Ext(path) == Extension {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %s: %w", path, err)
	}

	return paths, nil
}
