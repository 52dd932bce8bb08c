package quill

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.followtheprocess.codes/quill/internal/format"
	"go.followtheprocess.codes/quill/internal/syntax/diag"
	"go.followtheprocess.codes/quill/internal/syntax/scanner"
	"go.followtheprocess.codes/quill/internal/syntax/text"
)

// DefaultFormat is the default export format for the tokens subcommand.
const DefaultFormat = "json"

// TokensOptions are the options passed to the tokens subcommand.
type TokensOptions struct {
	// File is the path to the file to scan, "-" for stdin.
	File string

	// Format is the name of the export format e.g. json, yaml.
	Format string
}

// Validate reports whether the TokensOptions is valid, returning an error
// if it's not.
func (t TokensOptions) Validate() error {
	if _, err := format.Lookup(t.Format); err != nil {
		return fmt.Errorf("invalid option for --format: %w", err)
	}

	return nil
}

// Tokens implements the tokens subcommand, exporting the tokens of a file along
// with any lexical diagnostics.
//
// Lexical problems are part of the exported document rather than an error.
func (q Quill) Tokens(ctx context.Context, options TokensOptions) error {
	logger := q.logger.Prefixed("tokens").With(slog.String("format", options.Format))

	if err := options.Validate(); err != nil {
		return err
	}

	exporter, err := format.Lookup(options.Format)
	if err != nil {
		return err
	}

	name, src, err := q.read(options.File)
	if err != nil {
		return err
	}

	start := time.Now()

	bag := diag.NewBag()
	tokens := scanner.Tokenize(src, bag)

	logger.Debug(
		"Scanned source",
		slog.String("file", name),
		slog.Int("tokens", len(tokens)),
		slog.Int("diagnostics", bag.Len()),
		slog.Duration("took", time.Since(start)),
	)

	doc, err := format.NewDocument(name, text.New(src), tokens, bag.Items())
	if err != nil {
		return fmt.Errorf("could not build document: %w", err)
	}

	if err := exporter.Export(q.stdout, doc); err != nil {
		return fmt.Errorf("could not export %s: %w", options.Format, err)
	}

	return nil
}
