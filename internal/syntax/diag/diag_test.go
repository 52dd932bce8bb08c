package diag_test

import (
	"slices"
	"testing"

	"go.followtheprocess.codes/quill/internal/syntax"
	"go.followtheprocess.codes/quill/internal/syntax/diag"
	"go.followtheprocess.codes/quill/internal/syntax/token"
	"go.followtheprocess.codes/test"
)

func TestBagConvenience(t *testing.T) {
	src := "x = 1 @"

	tests := []struct {
		report func(bag *diag.Bag) // Reports into the bag
		name   string              // Name of the test case
		want   diag.Diagnostic     // Expected diagnostic
	}{
		{
			name: "unexpected token",
			report: func(bag *diag.Bag) {
				bag.UnexpectedToken(token.Assign, token.Token{Kind: token.Equal, Span: syntax.NewSpan(src, 2, 3)})
			},
			want: diag.Diagnostic{
				Message:  "expected <Assign>, found <Equal>",
				Span:     syntax.Span{Start: 2, End: 3, Literal: "="},
				Severity: diag.SeverityError,
			},
		},
		{
			name: "expected expression",
			report: func(bag *diag.Bag) {
				bag.ExpectedExpression(token.Token{Kind: token.EOF, Span: syntax.NewSpan(src, 7, 7)})
			},
			want: diag.Diagnostic{
				Message:  "expected expression, found <EOF>",
				Span:     syntax.Span{Start: 7, End: 7, Literal: ""},
				Severity: diag.SeverityError,
			},
		},
		{
			name: "unknown token",
			report: func(bag *diag.Bag) {
				bag.UnknownToken(syntax.NewSpan(src, 6, 7))
			},
			want: diag.Diagnostic{
				Message:  "unknown token <@>",
				Span:     syntax.Span{Start: 6, End: 7, Literal: "@"},
				Severity: diag.SeverityError,
			},
		},
		{
			name: "warning",
			report: func(bag *diag.Bag) {
				bag.Warning(syntax.NewSpan(src, 0, 1), "%s is never used", "x")
			},
			want: diag.Diagnostic{
				Message:  "x is never used",
				Span:     syntax.Span{Start: 0, End: 1, Literal: "x"},
				Severity: diag.SeverityWarning,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := diag.NewBag()
			tt.report(bag)

			test.Equal(t, bag.Len(), 1)
			test.Equal(t, bag.Items()[0], tt.want)
		})
	}
}

func TestBagOrder(t *testing.T) {
	src := "abcdefghij"
	bag := diag.NewBag()

	test.True(t, bag.IsEmpty())
	test.False(t, bag.HasErrors())

	bag.Warning(syntax.NewSpan(src, 8, 9), "third")
	bag.Error(syntax.NewSpan(src, 2, 4), "first")
	bag.Error(syntax.NewSpan(src, 2, 4), "second")

	test.False(t, bag.IsEmpty())
	test.True(t, bag.HasErrors())

	var reported []string
	for _, d := range bag.Items() {
		reported = append(reported, d.Message)
	}

	test.EqualFunc(t, reported, []string{"third", "first", "second"}, slices.Equal)

	var sorted []string
	for _, d := range bag.Sorted() {
		sorted = append(sorted, d.Message)
	}

	// Stable, so "first" stays ahead of "second"
	test.EqualFunc(t, sorted, []string{"first", "second", "third"}, slices.Equal)
}

func TestBagItemsIsACopy(t *testing.T) {
	bag := diag.NewBag()
	bag.Error(syntax.Span{}, "original")

	items := bag.Items()
	items[0].Message = "changed"

	test.Equal(t, bag.Items()[0].Message, "original")
}

func TestWarningsOnly(t *testing.T) {
	var bag diag.Bag // Zero value is usable

	bag.Warning(syntax.Span{}, "just a warning")

	test.Equal(t, bag.Len(), 1)
	test.False(t, bag.HasErrors())
}
