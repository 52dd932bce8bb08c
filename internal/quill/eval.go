package quill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.followtheprocess.codes/quill/internal/eval"
)

// exprName is the file name used for source passed with --expr.
const exprName = "expr"

// EvalOptions are the options passed to the eval subcommand.
type EvalOptions struct {
	// File is the path to the file to evaluate, "-" for stdin.
	//
	// Mutually exclusive with Expr.
	File string

	// Expr is source text to evaluate directly.
	//
	// Mutually exclusive with File.
	Expr string
}

// Validate reports whether the EvalOptions is valid, returning an error
// if it's not.
//
// nil means the options are valid.
func (e EvalOptions) Validate() error {
	switch {
	case e.File == "" && e.Expr == "":
		return errors.New("one of a file or --expr is required")
	case e.File != "" && e.Expr != "":
		return errors.New("a file and --expr are mutually exclusive")
	default:
		return nil
	}
}

// Eval implements the eval subcommand, it evaluates every statement in turn and
// prints its value.
//
// Source with any diagnostics is never evaluated.
func (q Quill) Eval(ctx context.Context, options EvalOptions) error {
	logger := q.logger.Prefixed("eval")

	if err := options.Validate(); err != nil {
		return err
	}

	name, text := exprName, options.Expr
	if options.File != "" {
		var err error

		name, text, err = q.read(options.File)
		if err != nil {
			return err
		}
	}

	src := q.parse(logger, name, text)
	if !src.bag.IsEmpty() {
		return q.syntaxError(src)
	}

	evaluator := eval.New()

	for _, statement := range src.file.Statements {
		if err := ctx.Err(); err != nil {
			return err
		}

		value, err := evaluator.Evaluate(statement)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		logger.Debug("Evaluated statement", slog.Int64("value", value))

		fmt.Fprintln(q.stdout, value)
	}

	return nil
}
