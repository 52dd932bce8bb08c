package quill

import (
	"context"

	"go.followtheprocess.codes/quill/internal/syntax/ast"
)

// ASTOptions are the options passed to the ast subcommand.
type ASTOptions struct {
	// File is the path to the file to print, "-" for stdin.
	File string
}

// AST implements the ast subcommand, printing the tree of a file.
//
// The tree is printed even if the file has diagnostics, so the parser's recovery
// can be inspected, but [ErrSyntax] is still returned.
func (q Quill) AST(ctx context.Context, options ASTOptions) error {
	logger := q.logger.Prefixed("ast")

	name, text, err := q.read(options.File)
	if err != nil {
		return err
	}

	src := q.parse(logger, name, text)

	if err := ast.NewPrinter(q.stdout).Print(src.file.Statements...); err != nil {
		return err
	}

	if !src.bag.IsEmpty() {
		return q.syntaxError(src)
	}

	return nil
}
