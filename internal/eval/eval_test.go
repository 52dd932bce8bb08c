package eval_test

import (
	"errors"
	"math"
	"testing"

	"go.followtheprocess.codes/quill/internal/eval"
	"go.followtheprocess.codes/quill/internal/syntax/ast"
	"go.followtheprocess.codes/quill/internal/syntax/diag"
	"go.followtheprocess.codes/quill/internal/syntax/parser"
	"go.followtheprocess.codes/quill/internal/syntax/token"
	"go.followtheprocess.codes/test"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		src  string // Source containing a single expression statement
		want int64  // Expected value
	}{
		{name: "number", src: "42", want: 42},
		{name: "negative number", src: "-42", want: -42},
		{name: "addition", src: "1 + 2", want: 3},
		{name: "precedence", src: "1 + 2 * 3", want: 7},
		{name: "parentheses", src: "(1 + 2) * 3", want: 9},
		{name: "subtraction groups right", src: "8 - 3 - 2", want: 7},
		{name: "division groups right", src: "16 / 4 / 2", want: 8},
		{name: "explicit left grouping", src: "(8 - 3) - 2", want: 3},
		{name: "modulo", src: "17 % 5", want: 2},
		{name: "truncating division", src: "7 / 2", want: 3},
		{name: "negative operand", src: "10 * -2", want: -20},
		{name: "nested parentheses", src: "((2))", want: 2},
		{name: "mixed", src: "2 * (3 + 4) - 10 % 4", want: 12},
		{name: "wraps on overflow", src: "9223372036854775807 + 1", want: math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement := parseOne(t, tt.src)

			got, err := eval.New().Evaluate(statement)
			test.Ok(t, err)
			test.Equal(t, got, tt.want)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		want error  // Expected sentinel error
		name string // Name of the test case
		src  string // Source containing a single statement
	}{
		{name: "division by zero", src: "1 / 0", want: eval.ErrDivisionByZero},
		{name: "modulo by zero", src: "1 % 0", want: eval.ErrDivisionByZero},
		{name: "computed zero divisor", src: "10 / (3 - 3)", want: eval.ErrDivisionByZero},
		{name: "nested division by zero", src: "1 + (2 / 0) * 3", want: eval.ErrDivisionByZero},
		{name: "assignment", src: "x := 1;", want: eval.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement := parseOne(t, tt.src)

			got, err := eval.New().Evaluate(statement)
			test.Err(t, err)
			test.True(t, errors.Is(err, tt.want), test.Context("wrong error: %v", err))
			test.Equal(t, got, 0)
		})
	}
}

func TestEvaluateErrorNode(t *testing.T) {
	bag := diag.NewBag()
	file := parser.Parse("test.ql", "1 + ;", bag)
	test.Equal(t, bag.Len(), 1)
	test.Equal(t, len(file.Statements), 1)

	_, err := eval.New().Evaluate(file.Statements[0])
	test.True(t, errors.Is(err, eval.ErrUnsupported), test.Context("wrong error: %v", err))
}

func TestEvaluateVariable(t *testing.T) {
	// The parser never produces variables but the tree allows them
	variable := ast.Variable{Ident: token.Token{Kind: token.Ident, Lexeme: "x"}}

	_, err := eval.New().EvaluateExpression(variable)
	test.True(t, errors.Is(err, eval.ErrUnsupported), test.Context("wrong error: %v", err))
}

func TestEvaluatorReuse(t *testing.T) {
	e := eval.New()

	_, err := e.Evaluate(parseOne(t, "1 / 0"))
	test.Err(t, err)

	// A failed evaluation doesn't poison the next one
	got, err := e.Evaluate(parseOne(t, "2 + 2"))
	test.Ok(t, err)
	test.Equal(t, got, 4)
}

// parseOne parses src, failing the test if it is not exactly one statement
// with no diagnostics.
func parseOne(tb testing.TB, src string) ast.Statement {
	tb.Helper()

	bag := diag.NewBag()
	file := parser.Parse("test.ql", src, bag)

	for _, d := range bag.Items() {
		tb.Fatalf("unexpected diagnostic in %q: %s", src, d)
	}

	if len(file.Statements) != 1 {
		tb.Fatalf("expected 1 statement in %q, got %d", src, len(file.Statements))
	}

	return file.Statements[0]
}
