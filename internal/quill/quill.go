// Package quill implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package quill

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/quill/internal/config"
	"go.followtheprocess.codes/quill/internal/syntax/ast"
	"go.followtheprocess.codes/quill/internal/syntax/diag"
	"go.followtheprocess.codes/quill/internal/syntax/parser"
	"go.followtheprocess.codes/quill/internal/syntax/render"
	"go.followtheprocess.codes/quill/internal/syntax/text"
)

// Extension is the file extension of quill source files.
const Extension = ".ql"

// stdinName is the file name used for source read from stdin.
const stdinName = "stdin"

// Styles.
const (
	// failure is the style used for the names of files with problems.
	failure = hue.Red | hue.Bold

	// warning is the style used for the names of files with only warnings.
	warning = hue.Yellow | hue.Bold

	// dimmed is the style used for informational content like diagnostic counts.
	dimmed = hue.BrightBlack | hue.Italic
)

// ErrSyntax is returned when source text has diagnostics, the diagnostics themselves
// have already been rendered to stderr by the time it is returned.
var ErrSyntax = errors.New("syntax errors")

// Quill represents the quill program.
type Quill struct {
	stdin  io.Reader     // Source is read from here when the file is "-"
	stdout io.Writer     // Normal program output is written here
	stderr io.Writer     // Logs, diagnostics and errors are written here
	logger *log.Logger   // The logger for the application
	config config.Config // Loaded configuration
}

// New returns a new [Quill].
func New(debug bool, version string, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) Quill {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	logger := log.New(stderr, log.Prefix("quill"), log.WithLevel(level)).With(slog.String("version", version))

	return Quill{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
		config: cfg,
	}
}

// source is a parsed piece of quill source text.
type source struct {
	bag  *diag.Bag // Everything the scanner and parser reported
	name string    // Name of the file, "stdin" or "expr"
	text text.Text // Line index over the raw source
	file ast.File  // The parsed tree
}

// parse tokenizes and parses src.
func (q Quill) parse(logger *log.Logger, name, src string) source {
	start := time.Now()

	bag := diag.NewBag()
	file := parser.Parse(name, src, bag)

	logger.Debug(
		"Parsed source",
		slog.String("file", name),
		slog.Int("statements", len(file.Statements)),
		slog.Int("diagnostics", bag.Len()),
		slog.Duration("took", time.Since(start)),
	)

	return source{
		bag:  bag,
		name: name,
		text: text.New(src),
		file: file,
	}
}

// read reads the source text of file, "-" means read from stdin.
func (q Quill) read(file string) (name, src string, err error) {
	if file == "-" {
		contents, err := io.ReadAll(q.stdin)
		if err != nil {
			return "", "", fmt.Errorf("could not read stdin: %w", err)
		}

		return stdinName, string(contents), nil
	}

	contents, err := os.ReadFile(file)
	if err != nil {
		return "", "", fmt.Errorf("could not read file: %w", err)
	}

	return file, string(contents), nil
}

// report renders every diagnostic in src to w, ordered by position.
func (q Quill) report(w io.Writer, src source) error {
	renderer := render.New(
		src.text,
		render.Name(src.name),
		render.MaxWidth(q.config.Render.MaxWidth),
		render.Color(q.config.Render.Color),
	)

	return renderer.RenderAll(w, src.bag.Sorted())
}

// style applies s to text if colour is enabled.
func (q Quill) style(s hue.Style, text string) string {
	if !q.config.Render.Color {
		return text
	}

	return s.Text(text)
}

// syntaxError renders the diagnostics in src to stderr and returns an error
// wrapping [ErrSyntax].
func (q Quill) syntaxError(src source) error {
	if err := q.report(q.stderr, src); err != nil {
		return err
	}

	return fmt.Errorf("%w: %s has %s", ErrSyntax, src.name, plural(src.bag.Len(), "diagnostic"))
}

// plural returns e.g. "1 diagnostic" or "3 diagnostics".
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
